package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.MovieWithGenres, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, director, screenwriter, actors, description, trailer_url, poster_url, age_rating, duration
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Screenwriter,
			&movie.Actors,
			&movie.Description,
			&movie.TrailerURL,
			&movie.PosterURL,
			&movie.AgeRating,
			&movie.Duration,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, rows.Err()
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.MovieWithGenres, error) {
	query := `
		SELECT m.id, m.title, m.director, m.screenwriter,
		       COALESCE(array_remove(array_agg(g.name), NULL), '{}') AS genres,
		       m.actors, m.description, m.trailer_url, m.poster_url, m.age_rating, m.duration
		FROM movies m
		LEFT JOIN m2m_movies_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE m.id = $1
		GROUP BY m.id
	`

	var movie entity.MovieWithGenres
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Screenwriter,
		&movie.Genres,
		&movie.Actors,
		&movie.Description,
		&movie.TrailerURL,
		&movie.PosterURL,
		&movie.AgeRating,
		&movie.Duration,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}
