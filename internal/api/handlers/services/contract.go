package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.ServiceListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error)
	Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
