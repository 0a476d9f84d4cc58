package entity

import "time"

// Order owns its seat reservations: they are created and deleted together.
type Order struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	SessionID  int64     `db:"session_id"`
	TotalPrice int64     `db:"total_price"`
	Info       string    `db:"info"`
	CreatedAt  time.Time `db:"created_at"`
}
