package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Session *SessionHandler
	Order   *OrderHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Session: NewSessionHandler(service.Catalog, service.Order, log),
		Order:   NewOrderHandler(service.Order, log),
		User:    NewUserHandler(service.User, log),
	}
}

// respondError maps sentinel errors onto HTTP status codes. Anything not in
// the taxonomy is a 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, repository.ErrEmailTaken):
		log.Warn(operation+" failed - email occupied", zap.Error(err))
		utils.ResponseBadRequest(w, "Email is occupied!")

	case errors.Is(err, repository.ErrSeatTaken):
		log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, "Seat is already reserved")

	case errors.Is(err, usecase.ErrIncorrectEmail):
		log.Warn(operation+" failed - unknown email", zap.Error(err))
		utils.ResponseBadRequest(w, "Incorrect email!")

	case errors.Is(err, usecase.ErrIncorrectPassword):
		log.Warn(operation+" failed - wrong password", zap.Error(err))
		utils.ResponseBadRequest(w, "Incorrect password!")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
