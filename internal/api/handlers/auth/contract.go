package auth

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/auth/models"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
)

type AuthService interface {
	Login(ctx context.Context, req *models.CredentialsRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.CredentialsRequest) (*models.AdminResponse, error)
	Logout(ctx context.Context, claims *jwtauth.Claims) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
