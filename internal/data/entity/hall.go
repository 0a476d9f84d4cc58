package entity

type Hall struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	TotalSeats int    `db:"total_seats"`
}
