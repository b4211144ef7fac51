package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// AppointmentStatsRepository счетчики записей
type AppointmentStatsRepository interface {
	Stats(ctx context.Context, today time.Time) (*domain.AppointmentStats, error)
}

// Counter количество строк в таблице (услуги, блоки рабочего времени)
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider в часовом поясе салона
type RealTimeProvider struct {
	Location *time.Location
}

func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
