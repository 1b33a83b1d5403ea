package repository

import (
	"context"
	"fmt"
	"hospital/domain"
	"hospital/middleware"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User

	err := ar.db.WithContext(ctx).Where("username = ?", data.Username).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	token, err := middleware.GenerateJWT(user.UserID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}
