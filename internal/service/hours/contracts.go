package hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
)

// BusinessHourRepository интерфейс репозитория рабочих часов
type BusinessHourRepository interface {
	Create(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BusinessHour, error)
	List(ctx context.Context) ([]*domain.BusinessHour, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHour, error)
	Update(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
