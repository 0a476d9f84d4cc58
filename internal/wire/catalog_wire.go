package wire

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	tm *utils.TokenManager,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm, log))
		r.Use(middleware.Cache(rdb, cacheTTL, log))

		// GET /api/genres - List all genres
		r.Get("/api/genres", catalogHandler.Genres)

		// GET /api/movies - List all movies
		r.Get("/api/movies", catalogHandler.Movies)

		// GET /api/movies/{id} - Movie details with genres
		r.Get("/api/movies/{id}", catalogHandler.MovieByID)
	})
}
