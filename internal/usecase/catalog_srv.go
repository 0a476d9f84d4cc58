package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
)

type CatalogService interface {
	Movies(ctx context.Context) ([]*response.MovieResponse, error)
	MovieByID(ctx context.Context, id int64) (*response.MovieDetailResponse, error)
	Genres(ctx context.Context) ([]*response.GenreResponse, error)
	SessionByID(ctx context.Context, id int64) (*response.SessionDetailResponse, error)
	Sessions(ctx context.Context, filters request.SessionFilters) ([]*response.SessionDetailResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) Movies(ctx context.Context) ([]*response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		result = append(result, convertMovie(movie))
	}
	return result, nil
}

func (s *catalogService) MovieByID(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertMovieDetail(movie), nil
}

func (s *catalogService) Genres(ctx context.Context) ([]*response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		result = append(result, &response.GenreResponse{
			ID:   genre.ID,
			Name: genre.Name,
		})
	}
	return result, nil
}

func (s *catalogService) SessionByID(ctx context.Context, id int64) (*response.SessionDetailResponse, error) {
	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detailSession(ctx, session)
}

func (s *catalogService) Sessions(ctx context.Context, filters request.SessionFilters) ([]*response.SessionDetailResponse, error) {
	sessions, err := s.repo.Session.FindFiltered(ctx, repository.SessionFilter{
		Title:     filters.Title,
		Genres:    filters.Genres,
		AgeRating: filters.AgeRating,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*response.SessionDetailResponse, 0, len(sessions))
	for _, session := range sessions {
		detailed, err := s.detailSession(ctx, session)
		if err != nil {
			return nil, err
		}
		result = append(result, detailed)
	}
	return result, nil
}

// detailSession embeds the movie (with genres) and hall into a session row.
func (s *catalogService) detailSession(ctx context.Context, session *entity.Session) (*response.SessionDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, fmt.Errorf("movie of session %d: %w", session.ID, err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, session.HallID)
	if err != nil {
		return nil, fmt.Errorf("hall of session %d: %w", session.ID, err)
	}

	return &response.SessionDetailResponse{
		ID:    session.ID,
		Movie: *convertMovieDetail(movie),
		Hall: response.HallResponse{
			ID:         hall.ID,
			Name:       hall.Name,
			TotalSeats: hall.TotalSeats,
		},
		StartTime: session.StartTime,
	}, nil
}

func convertMovie(movie *entity.Movie) *response.MovieResponse {
	return &response.MovieResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Director:     movie.Director,
		Screenwriter: movie.Screenwriter,
		Actors:       movie.Actors,
		Description:  movie.Description,
		TrailerURL:   movie.TrailerURL,
		PosterURL:    movie.PosterURL,
		AgeRating:    string(movie.AgeRating),
		Duration:     movie.Duration,
	}
}

func convertMovieDetail(movie *entity.MovieWithGenres) *response.MovieDetailResponse {
	return &response.MovieDetailResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		Director:     movie.Director,
		Screenwriter: movie.Screenwriter,
		Genres:       movie.Genres,
		Actors:       movie.Actors,
		Description:  movie.Description,
		TrailerURL:   movie.TrailerURL,
		PosterURL:    movie.PosterURL,
		AgeRating:    string(movie.AgeRating),
		Duration:     movie.Duration,
	}
}
