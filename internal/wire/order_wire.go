package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cinema-api/internal/adaptor"
	"cinema-api/pkg/middleware"
	"cinema-api/pkg/utils"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tm *utils.TokenManager,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm, log))

		// POST /api/orders - Reserve seats for a session
		r.Post("/api/orders", orderHandler.CreateOrder)
	})

	// DELETE /api/orders/{id} - Cancel an order
	// TODO: require authentication and ownership here; any client can
	// currently cancel any order by id.
	r.Delete("/api/orders/{id}", orderHandler.DeleteOrder)
}
