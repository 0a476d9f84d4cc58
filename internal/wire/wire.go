package wire

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, rdb *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	tokenManager := utils.NewTokenManager(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)

	service := usecase.NewService(repo, tokenManager, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokenManager, rdb, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router.
func setupRouter(
	handler *adaptor.Handler,
	tm *utils.TokenManager,
	rdb *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	var cacheTTL time.Duration
	if config.Cache.Enabled {
		cacheTTL = time.Duration(config.Cache.TTLSeconds) * time.Second
	} else {
		rdb = nil
	}

	// Apply routes
	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog, tm, rdb, cacheTTL, logger)
	wireSession(r, handler.Session, tm, rdb, cacheTTL, logger)
	wireOrder(r, handler.Order, tm, logger)
	wireUser(r, handler.User, tm, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
