package entity

import "time"

// Session is a scheduled screening of a movie in a hall.
type Session struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	HallID    int64     `db:"hall_id"`
	StartTime time.Time `db:"start_time"`
}
