package usecase

import (
	"context"

	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
)

type OrderService interface {
	// CreateOrder persists an order and its seat reservations atomically.
	// Availability is re-checked inside the store's transaction, so two
	// concurrent orders for overlapping seats cannot both succeed.
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	SeatsForSession(ctx context.Context, sessionID int64) ([]*response.SeatAvailabilityResponse, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	order := &entity.Order{
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		TotalPrice: req.TotalPrice,
		Info:       req.Info,
	}

	if err := s.repo.Order.Create(ctx, order, req.SeatsIDs); err != nil {
		return nil, err
	}

	return convertOrder(order), nil
}

func (s *orderService) SeatsForSession(ctx context.Context, sessionID int64) ([]*response.SeatAvailabilityResponse, error) {
	// Distinguish "unknown session" from "session with no seats".
	if _, err := s.repo.Session.FindByID(ctx, sessionID); err != nil {
		return nil, err
	}

	seats, err := s.repo.Seat.FindForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := make([]*response.SeatAvailabilityResponse, 0, len(seats))
	for _, seat := range seats {
		result = append(result, &response.SeatAvailabilityResponse{
			SeatResponse: response.SeatResponse{
				ID:         seat.ID,
				HallID:     seat.HallID,
				RowNumber:  seat.RowNumber,
				SeatNumber: seat.SeatNumber,
				Price:      seat.Price,
			},
			IsAvailable: seat.IsAvailable,
		})
	}
	return result, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.repo.Order.Delete(ctx, orderID)
}

func convertOrder(order *entity.Order) *response.OrderResponse {
	return &response.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		SessionID:  order.SessionID,
		TotalPrice: order.TotalPrice,
		Info:       order.Info,
		CreatedAt:  order.CreatedAt,
	}
}
