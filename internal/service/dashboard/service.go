package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/salon-booking/internal/service/dashboard/models"
)

// Service сервис счетчиков админки
type Service struct {
	appointments  AppointmentStatsRepository
	services      Counter
	businessHours Counter
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	appointments AppointmentStatsRepository,
	services Counter,
	businessHours Counter,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointments:  appointments,
		services:      services,
		businessHours: businessHours,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Get собирает счетчики записей, услуг и блоков рабочего времени
func (s *Service) Get(ctx context.Context) (*models.DashboardResponse, error) {
	today := s.timeProvider.Now()
	s.logger.Info("Get: collecting dashboard counters for %s", today.Format("2006-01-02"))

	stats, err := s.appointments.Stats(ctx, today)
	if err != nil {
		s.logger.Error("Get: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: Get - appointments stats: %v", ErrInternal, err)
	}

	servicesCount, err := s.services.Count(ctx)
	if err != nil {
		s.logger.Error("Get: failed to count services: %v", err)
		return nil, fmt.Errorf("%w: Get - services count: %v", ErrInternal, err)
	}

	hoursCount, err := s.businessHours.Count(ctx)
	if err != nil {
		s.logger.Error("Get: failed to count business hours: %v", err)
		return nil, fmt.Errorf("%w: Get - business hours count: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats, servicesCount, hoursCount), nil
}
