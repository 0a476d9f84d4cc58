package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
)

type SeatRepository interface {
	// FindForSession returns every seat of the session's hall annotated
	// with availability for that session.
	FindForSession(ctx context.Context, sessionID int64) ([]*entity.SeatWithAvailability, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

// A seat is unavailable only while a reservation belonging to an order of
// THIS session references it. Reservations for other sessions in the same
// hall do not count.
func (r *seatRepository) FindForSession(ctx context.Context, sessionID int64) ([]*entity.SeatWithAvailability, error) {
	query := `
		SELECT st.id, st.hall_id, st.row_number, st.seat_number, st.price,
		       NOT EXISTS (
		           SELECT 1
		           FROM m2m_orders_seats os
		           JOIN orders o ON o.id = os.order_id
		           WHERE os.seat_id = st.id AND o.session_id = $1
		       ) AS is_available
		FROM seats st
		JOIN sessions s ON s.hall_id = st.hall_id
		WHERE s.id = $1
		ORDER BY st.seat_number, st.row_number
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find seats for session",
			zap.Error(err),
			zap.Int64("session_id", sessionID),
		)
		return nil, fmt.Errorf("find seats for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var seats []*entity.SeatWithAvailability
	for rows.Next() {
		var seat entity.SeatWithAvailability
		err := rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.RowNumber,
			&seat.SeatNumber,
			&seat.Price,
			&seat.IsAvailable,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, rows.Err()
}

func (r *seatRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*entity.Seat, error) {
	query := `
		SELECT st.id, st.hall_id, st.row_number, st.seat_number, st.price
		FROM seats st
		JOIN m2m_orders_seats os ON os.seat_id = st.id
		WHERE os.order_id = $1
		ORDER BY st.id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find seats by order ID",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find seats by order ID %d: %w", orderID, err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.RowNumber,
			&seat.SeatNumber,
			&seat.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, rows.Err()
}
