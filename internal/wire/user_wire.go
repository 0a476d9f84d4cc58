package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tm *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm, log)) // Must be authenticated
		r.Use(middleware.Admin(log))    // Must be admin

		// GET /api/users - List all users
		r.Get("/api/users", userHandler.Users)

		// GET /api/users/{id}/orders - Orders of a user with their seats
		r.Get("/api/users/{id}/orders", userHandler.UserOrders)
	})
}
