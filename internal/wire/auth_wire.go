package wire

import (
	"github.com/go-chi/chi/v5"

	"cinema-api/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Create account, sets access_token cookie
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Authenticate, sets access_token cookie
	r.Post("/api/auth/login", authHandler.Login)
}
