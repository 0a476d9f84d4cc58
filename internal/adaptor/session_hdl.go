package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"
)

type SessionHandler struct {
	catalog usecase.CatalogService
	orders  usecase.OrderService
	log     *zap.Logger
}

func NewSessionHandler(catalog usecase.CatalogService, orders usecase.OrderService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		catalog: catalog,
		orders:  orders,
		log:     log,
	}
}

// Sessions handles GET /api/sessions
func (h *SessionHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	filters := request.ParseSessionFilters(r.URL.Query())

	sessions, err := h.catalog.Sessions(r.Context(), filters)
	if err != nil {
		respondError(w, h.log, err, "list sessions")
		return
	}
	utils.ResponseSuccess(w, sessions)
}

// SessionByID handles GET /api/sessions/{id}
func (h *SessionHandler) SessionByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid session id")
		return
	}

	session, err := h.catalog.SessionByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get session")
		return
	}
	utils.ResponseSuccess(w, session)
}

// Seats handles GET /api/sessions/{id}/seats
func (h *SessionHandler) Seats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid session id")
		return
	}

	seats, err := h.orders.SeatsForSession(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "list session seats")
		return
	}
	utils.ResponseSuccess(w, seats)
}
