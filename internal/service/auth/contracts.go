package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}

// TokenIssuer выпускает токены сессии администратора
type TokenIssuer interface {
	Issue(adminID uuid.UUID, username string) (string, *jwtauth.Claims, error)
}

// RevocationStore хранилище отозванных токенов
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
