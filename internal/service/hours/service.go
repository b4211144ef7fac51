package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	hourRepo "github.com/m04kA/salon-booking/internal/infra/storage/businesshour"
	"github.com/m04kA/salon-booking/internal/service/hours/models"
)

// Service сервис рабочих часов
type Service struct {
	hourRepo BusinessHourRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(hourRepo BusinessHourRepository, logger Logger) *Service {
	return &Service{
		hourRepo: hourRepo,
		logger:   logger,
	}
}

// List возвращает все блоки рабочих часов по дню и времени начала
func (s *Service) List(ctx context.Context) (*models.BusinessHourListResponse, error) {
	s.logger.Info("List: fetching business hours")

	hours, err := s.hourRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusinessHourList(hours), nil
}

// GetByID получает блок рабочих часов по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BusinessHourResponse, error) {
	s.logger.Info("GetByID: fetching business hour id=%s", id)

	hour, err := s.hourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hourRepo.ErrBusinessHourNotFound) {
			s.logger.Warn("GetByID: business hour id=%s not found", id)
			return nil, ErrBusinessHourNotFound
		}
		s.logger.Error("GetByID: repository error for business hour id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusinessHour(hour), nil
}

// Create добавляет блок рабочих часов.
// Блоки одного дня не должны пересекаться.
func (s *Service) Create(ctx context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	s.logger.Info("Create: creating business hour day=%d %s-%s", req.DayOfWeek, req.StartTime, req.EndTime)

	hour, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkOverlap(ctx, "Create", hour); err != nil {
		return nil, err
	}

	created, err := s.hourRepo.Create(ctx, hour)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created business hour id=%s", created.ID)
	return models.FromDomainBusinessHour(created), nil
}

// Update заменяет день и время блока рабочих часов
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	s.logger.Info("Update: updating business hour id=%s", id)

	hour, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for business hour id=%s: %v", id, err)
		return nil, err
	}
	hour.ID = id

	if err := s.checkOverlap(ctx, "Update", hour); err != nil {
		return nil, err
	}

	updated, err := s.hourRepo.Update(ctx, hour)
	if err != nil {
		if errors.Is(err, hourRepo.ErrBusinessHourNotFound) {
			s.logger.Warn("Update: business hour id=%s not found", id)
			return nil, ErrBusinessHourNotFound
		}
		s.logger.Error("Update: repository error for business hour id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated business hour id=%s", id)
	return models.FromDomainBusinessHour(updated), nil
}

// Delete удаляет блок рабочих часов
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting business hour id=%s", id)

	if err := s.hourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, hourRepo.ErrBusinessHourNotFound) {
			s.logger.Warn("Delete: business hour id=%s not found", id)
			return ErrBusinessHourNotFound
		}
		s.logger.Error("Delete: repository error for business hour id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) validate(req *models.BusinessHourRequest) (*domain.BusinessHour, error) {
	if !domain.ValidDayIndex(req.DayOfWeek) {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	hour, err := req.ToDomainBusinessHour()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !hour.StartTime.IsBefore(hour.EndTime) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return hour, nil
}

// checkOverlap проверяет пересечение с остальными блоками того же дня
func (s *Service) checkOverlap(ctx context.Context, op string, hour *domain.BusinessHour) error {
	sameDay, err := s.hourRepo.ListByDay(ctx, hour.DayOfWeek)
	if err != nil {
		s.logger.Error("%s: failed to list business hours for day=%d: %v", op, hour.DayOfWeek, err)
		return fmt.Errorf("%w: failed to list business hours: %v", ErrInternal, err)
	}

	for _, other := range sameDay {
		if other.ID == hour.ID {
			continue
		}
		if hour.Overlaps(other) {
			s.logger.Warn("%s: block %s-%s overlaps id=%s (%s-%s) on day=%d",
				op, hour.StartTime, hour.EndTime, other.ID, other.StartTime, other.EndTime, hour.DayOfWeek)
			return ErrOverlap
		}
	}

	return nil
}
