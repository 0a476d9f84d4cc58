package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"
)

// Login failures stay distinct: an unknown email and a wrong password for a
// known email produce different errors.
var (
	ErrIncorrectEmail    = errors.New("incorrect email")
	ErrIncorrectPassword = errors.New("incorrect password")
)

type AuthService interface {
	Register(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
	tm    *utils.TokenManager
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, tm *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		tm:    tm,
		log:   log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrEmailTaken
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: utils.HashPassword(req.Password),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tm.Issue(user.ID, user.IsAdmin)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.AuthResponse{Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrIncorrectEmail
	}

	// Digest comparison: the stored hash is a deterministic SHA-256 digest.
	if utils.HashPassword(req.Password) != user.PasswordHash {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrIncorrectPassword
	}

	token, err := s.tm.Issue(user.ID, user.IsAdmin)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &response.AuthResponse{Token: token}, nil
}
