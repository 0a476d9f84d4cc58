package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/response"
)

type UserService interface {
	Users(ctx context.Context) ([]*response.UserResponse, error)
	// UserOrders returns the user's orders oldest first, each with its
	// reserved seats. Unknown users yield ErrNotFound.
	UserOrders(ctx context.Context, userID int64) ([]*response.OrderDetailResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) Users(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, &response.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}
	return result, nil
}

func (s *userService) UserOrders(ctx context.Context, userID int64) ([]*response.OrderDetailResponse, error) {
	exists, err := s.repo.User.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*response.OrderDetailResponse, 0, len(orders))
	for _, order := range orders {
		seats, err := s.repo.Seat.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("seats of order %d: %w", order.ID, err)
		}

		detailed := &response.OrderDetailResponse{
			OrderResponse: *convertOrder(order),
			Seats:         make([]response.SeatResponse, 0, len(seats)),
		}
		for _, seat := range seats {
			detailed.Seats = append(detailed.Seats, response.SeatResponse{
				ID:         seat.ID,
				HallID:     seat.HallID,
				RowNumber:  seat.RowNumber,
				SeatNumber: seat.SeatNumber,
				Price:      seat.Price,
			})
		}
		result = append(result, detailed)
	}
	return result, nil
}
