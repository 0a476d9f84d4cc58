package usecase

import (
	"go.uber.org/zap"

	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Order   OrderService
	User    UserService
}

func NewService(repo *repository.Repository, tm *utils.TokenManager, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tm, log),
		Catalog: NewCatalogService(repo, log),
		Order:   NewOrderService(repo, log),
		User:    NewUserService(repo, log),
	}
}
