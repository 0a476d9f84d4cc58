package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create order")
		return
	}
	utils.ResponseSuccess(w, order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order id")
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete order")
		return
	}
	utils.ResponseSuccess(w, map[string]string{"msg": "Order deleted"})
}
