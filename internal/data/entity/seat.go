package entity

type Seat struct {
	ID         int64 `db:"id"`
	HallID     int64 `db:"hall_id"`
	RowNumber  int   `db:"row_number"`
	SeatNumber int   `db:"seat_number"`
	Price      int64 `db:"price"`
}

// SeatWithAvailability annotates a seat with its derived availability for
// one session. The flag is computed on read, never stored.
type SeatWithAvailability struct {
	Seat
	IsAvailable bool
}
