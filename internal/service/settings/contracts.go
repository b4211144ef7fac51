package settings

import (
	"context"

	"github.com/m04kA/salon-booking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBooking(ctx context.Context) (*domain.BookingSettings, error)
	UpsertBooking(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error)
	GetCustomization(ctx context.Context) (*domain.CustomizationSettings, error)
	UpsertCustomization(ctx context.Context, settings *domain.CustomizationSettings) (*domain.CustomizationSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
