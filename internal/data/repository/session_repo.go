package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
)

// SessionFilter narrows the screening listing. Zero values mean "no filter";
// the date range is inclusive on both ends.
type SessionFilter struct {
	Title     string   // case-insensitive title prefix
	Genres    []string // every named genre must match (substring, case-insensitive)
	AgeRating string   // exact match when set
	StartDate time.Time
	EndDate   time.Time
}

type SessionRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Session, error)
	FindFiltered(ctx context.Context, filter SessionFilter) ([]*entity.Session, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (*entity.Session, error) {
	query := `SELECT id, movie_id, hall_id, start_time FROM sessions WHERE id = $1`

	var session entity.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.HallID,
		&session.StartTime,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return nil, fmt.Errorf("find session by ID %d: %w", id, err)
	}

	return &session, nil
}

// FindFiltered returns one row per matching session; sessions sharing a
// movie each appear.
func (r *sessionRepository) FindFiltered(ctx context.Context, filter SessionFilter) ([]*entity.Session, error) {
	query := `
		SELECT s.id, s.movie_id, s.hall_id, s.start_time
		FROM sessions s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.start_time >= $1 AND s.start_time <= $2
	`
	args := []any{filter.StartDate, filter.EndDate}

	if filter.Title != "" {
		args = append(args, filter.Title+"%")
		query += fmt.Sprintf(" AND m.title ILIKE $%d", len(args))
	}
	if filter.AgeRating != "" {
		args = append(args, filter.AgeRating)
		query += fmt.Sprintf(" AND m.age_rating = $%d", len(args))
	}
	for _, genre := range filter.Genres {
		args = append(args, "%"+genre+"%")
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM m2m_movies_genres mg
			JOIN genres g ON g.id = mg.genre_id
			WHERE mg.movie_id = m.id AND g.name ILIKE $%d
		)`, len(args))
	}

	query += " ORDER BY s.start_time, s.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to filter sessions",
			zap.Error(err),
			zap.String("title", filter.Title),
			zap.Strings("genres", filter.Genres),
		)
		return nil, fmt.Errorf("filter sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.Session
	for rows.Next() {
		var session entity.Session
		err := rows.Scan(
			&session.ID,
			&session.MovieID,
			&session.HallID,
			&session.StartTime,
		)
		if err != nil {
			r.log.Error("Failed to scan session row", zap.Error(err))
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
