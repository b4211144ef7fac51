package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// BusinessHourRepository интерфейс репозитория рабочих часов
type BusinessHourRepository interface {
	// ListByDay получает блоки рабочего времени дня недели (0 = понедельник), упорядоченные по началу
	ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHour, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListOccupying получает записи на дату с указанными статусами
	ListOccupying(ctx context.Context, date time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error)
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
