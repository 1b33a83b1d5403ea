package usecase

import (
	"context"
	"hospital/domain"
	"time"
)

type authUseCase struct {
	repo    domain.AuthRepo
	TimeOut time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, to time.Duration) domain.AuthUseCase {
	return &authUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (au *authUseCase) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repo.Login(ctx, data)
}
