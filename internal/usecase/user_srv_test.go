package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
)

func TestUserService_Users(t *testing.T) {
	mockUsers := &MockUserRepository{}
	repo := &repository.Repository{User: mockUsers}
	service := NewUserService(repo, zap.NewNop())

	ctx := context.Background()

	createdAt := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	users := []*entity.User{
		{ID: 1, Email: "admin@example.com", IsAdmin: true, CreatedAt: createdAt},
		{ID: 2, Email: "user@example.com", IsAdmin: false, CreatedAt: createdAt},
	}
	mockUsers.On("FindAll", ctx).Return(users, nil).Once()

	resp, err := service.Users(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "admin@example.com", resp[0].Email)
	assert.True(t, resp[0].IsAdmin)
	assert.False(t, resp[1].IsAdmin)

	mockUsers.AssertExpectations(t)
}

func TestUserService_UserOrders_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockOrders := &MockOrderRepository{}
	mockSeats := &MockSeatRepository{}
	repo := &repository.Repository{User: mockUsers, Order: mockOrders, Seat: mockSeats}
	service := NewUserService(repo, zap.NewNop())

	ctx := context.Background()

	orders := []*entity.Order{
		{ID: 50, UserID: 2, SessionID: 7, TotalPrice: 1200, Info: "first"},
		{ID: 51, UserID: 2, SessionID: 8, TotalPrice: 600, Info: "second"},
	}
	mockUsers.On("ExistsByID", ctx, int64(2)).Return(true, nil).Once()
	mockOrders.On("FindByUserID", ctx, int64(2)).Return(orders, nil).Once()
	mockSeats.On("FindByOrderID", ctx, int64(50)).Return([]*entity.Seat{
		{ID: 10, HallID: 2, RowNumber: 1, SeatNumber: 1, Price: 600},
		{ID: 11, HallID: 2, RowNumber: 1, SeatNumber: 2, Price: 600},
	}, nil).Once()
	mockSeats.On("FindByOrderID", ctx, int64(51)).Return([]*entity.Seat{
		{ID: 12, HallID: 2, RowNumber: 2, SeatNumber: 1, Price: 600},
	}, nil).Once()

	resp, err := service.UserOrders(ctx, 2)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(50), resp[0].ID)
	assert.Len(t, resp[0].Seats, 2)
	assert.Len(t, resp[1].Seats, 1)
	assert.Equal(t, int64(12), resp[1].Seats[0].ID)

	mockUsers.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockSeats.AssertExpectations(t)
}

func TestUserService_UserOrders_UnknownUser(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockOrders := &MockOrderRepository{}
	repo := &repository.Repository{User: mockUsers, Order: mockOrders}
	service := NewUserService(repo, zap.NewNop())

	ctx := context.Background()

	mockUsers.On("ExistsByID", ctx, int64(404)).Return(false, nil).Once()

	resp, err := service.UserOrders(ctx, 404)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mockUsers.AssertExpectations(t)
	mockOrders.AssertNotCalled(t, "FindByUserID")
}

func TestUserService_UserOrders_NoOrders(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockOrders := &MockOrderRepository{}
	repo := &repository.Repository{User: mockUsers, Order: mockOrders}
	service := NewUserService(repo, zap.NewNop())

	ctx := context.Background()

	mockUsers.On("ExistsByID", ctx, int64(2)).Return(true, nil).Once()
	mockOrders.On("FindByUserID", ctx, int64(2)).Return([]*entity.Order{}, nil).Once()

	resp, err := service.UserOrders(ctx, 2)

	assert.NoError(t, err)
	assert.Empty(t, resp)
	assert.NotNil(t, resp)
}
