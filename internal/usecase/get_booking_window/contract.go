package get_booking_window

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// BookingSettingsProvider отдает текущие настройки записи (или значения по умолчанию)
type BookingSettingsProvider interface {
	BookingSettings(ctx context.Context) (*domain.BookingSettings, error)
}

// BusinessHourRepository интерфейс репозитория рабочих часов
type BusinessHourRepository interface {
	List(ctx context.Context) ([]*domain.BusinessHour, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе салона
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
