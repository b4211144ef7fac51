package business_hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/service/hours/models"
)

type HoursService interface {
	List(ctx context.Context) (*models.BusinessHourListResponse, error)
	Create(ctx context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
