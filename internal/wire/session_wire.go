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

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	tm *utils.TokenManager,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm, log))
		r.Use(middleware.Cache(rdb, cacheTTL, log))

		// GET /api/sessions - Filtered session listing
		r.Get("/api/sessions", sessionHandler.Sessions)

		// GET /api/sessions/{id} - Session details with movie and hall
		r.Get("/api/sessions/{id}", sessionHandler.SessionByID)
	})

	// Seat availability is never cached: a stale map would show
	// reserved seats as free.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm, log))

		// GET /api/sessions/{id}/seats - Seat map with availability
		r.Get("/api/sessions/{id}/seats", sessionHandler.Seats)
	})
}
