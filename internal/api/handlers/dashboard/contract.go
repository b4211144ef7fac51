package dashboard

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/dashboard/models"
)

type DashboardService interface {
	Get(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
