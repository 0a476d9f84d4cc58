package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
)

type OrderRepository interface {
	// Create persists the order and all its seat reservations as one
	// transaction, or nothing at all. Returns ErrNotFound when the session
	// does not exist and ErrSeatTaken when any requested seat is already
	// reserved for the session.
	Create(ctx context.Context, order *entity.Order, seatIDs []int64) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	// Delete removes reservations then the order; deleting a missing order
	// is a no-op.
	Delete(ctx context.Context, orderID int64) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order, seatIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the session row so concurrent orders for the same screening
	// serialize here; the availability re-check below then sees every
	// committed reservation.
	var sessionID int64
	err = tx.QueryRow(ctx, `SELECT id FROM sessions WHERE id = $1 FOR UPDATE`, order.SessionID).Scan(&sessionID)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock session for order",
			zap.Error(err),
			zap.Int64("session_id", order.SessionID),
		)
		return fmt.Errorf("lock session %d: %w", order.SessionID, err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM m2m_orders_seats os
			JOIN orders o ON o.id = os.order_id
			WHERE o.session_id = $1 AND os.seat_id = ANY($2)
		)`, order.SessionID, seatIDs).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check seat reservations",
			zap.Error(err),
			zap.Int64("session_id", order.SessionID),
		)
		return fmt.Errorf("check reservations for session %d: %w", order.SessionID, err)
	}
	if taken {
		return ErrSeatTaken
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, session_id, total_price, info, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`, order.UserID, order.SessionID, order.TotalPrice, order.Info).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
			zap.Int64("session_id", order.SessionID),
		)
		return fmt.Errorf("insert order: %w", err)
	}

	// Batch insert reservations
	query := `INSERT INTO m2m_orders_seats (order_id, seat_id) VALUES `
	args := []any{}
	for i, seatID := range seatIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, order.ID, seatID)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert seat reservations",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
			zap.Int("seat_count", len(seatIDs)),
		)
		return fmt.Errorf("insert reservations for order %d: %w", order.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order %d: %w", order.ID, err)
	}

	r.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("session_id", order.SessionID),
		zap.Int("seat_count", len(seatIDs)),
	)
	return nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, session_id, total_price, info, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find orders by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.SessionID,
			&order.TotalPrice,
			&order.Info,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) Delete(ctx context.Context, orderID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Reservations first, then the order that owns them.
	if _, err := tx.Exec(ctx, `DELETE FROM m2m_orders_seats WHERE order_id = $1`, orderID); err != nil {
		r.log.Error("Failed to delete seat reservations",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return fmt.Errorf("delete reservations for order %d: %w", orderID, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete of order %d: %w", orderID, err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Order deleted", zap.Int64("order_id", orderID))
	}
	return nil
}
