package settings

import (
	"context"

	"github.com/m04kA/salon-booking/internal/service/settings/models"
)

type SettingsService interface {
	GetBooking(ctx context.Context) (*models.BookingSettingsResponse, error)
	UpdateBooking(ctx context.Context, req *models.UpdateBookingSettingsRequest) (*models.BookingSettingsResponse, error)
	GetCustomization(ctx context.Context) (*models.CustomizationResponse, error)
	UpdateCustomization(ctx context.Context, req *models.UpdateCustomizationRequest) (*models.CustomizationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
