package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Users handles GET /api/users
func (h *UserHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Users(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list users")
		return
	}
	utils.ResponseSuccess(w, users)
}

// UserOrders handles GET /api/users/{id}/orders
func (h *UserHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	orders, err := h.service.UserOrders(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "list user orders")
		return
	}
	utils.ResponseSuccess(w, orders)
}
