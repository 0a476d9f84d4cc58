package response

import "time"

type OrderResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	SessionID  int64     `json:"sessionId"`
	TotalPrice int64     `json:"totalPrice"`
	Info       string    `json:"info"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderDetailResponse struct {
	OrderResponse
	Seats []SeatResponse `json:"seats"`
}
