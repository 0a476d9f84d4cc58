package repository

import (
	"go.uber.org/zap"

	"cinema-api/pkg/database"
)

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Genre   GenreRepository
	Hall    HallRepository
	Seat    SeatRepository
	Session SessionRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Genre:   NewGenreRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Seat:    NewSeatRepository(db, log),
		Session: NewSessionRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
