package blocked_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/service/blackouts/models"
)

type BlackoutsService interface {
	List(ctx context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error)
	Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
