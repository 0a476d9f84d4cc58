package response

type SeatResponse struct {
	ID         int64 `json:"id"`
	HallID     int64 `json:"hallId"`
	RowNumber  int   `json:"rowNumber"`
	SeatNumber int   `json:"seatNumber"`
	Price      int64 `json:"price"`
}

type SeatAvailabilityResponse struct {
	SeatResponse
	IsAvailable bool `json:"isAvailable"`
}
