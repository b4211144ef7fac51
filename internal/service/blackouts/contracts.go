package blackouts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
