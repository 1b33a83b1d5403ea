package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleFrontDesk = "frontdesk"
	RoleDoctor    = "doctor"
)

type User struct {
	UserID    int            `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string         `gorm:"type:varchar(50);not null;unique" json:"username"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name"`
	Password  string         `gorm:"type:varchar(100);not null" json:"-"`
	Role      string         `gorm:"type:role_enum;not null" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// SafeDoctorData is the doctor directory projection exposed to the front
// desk: no credentials, just what the registration form needs.
type SafeDoctorData struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AuthRepo interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}
