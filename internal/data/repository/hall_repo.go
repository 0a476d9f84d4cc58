package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
)

type HallRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Hall, error)
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) FindByID(ctx context.Context, id int64) (*entity.Hall, error) {
	query := `SELECT id, name, total_seats FROM halls WHERE id = $1`

	var hall entity.Hall
	err := r.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.TotalSeats)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.Int64("hall_id", id),
		)
		return nil, fmt.Errorf("find hall by ID %d: %w", id, err)
	}

	return &hall, nil
}
