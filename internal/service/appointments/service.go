package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/availability"
	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

// Config параметры сервиса записей
type Config struct {
	PhoneDigits             int    // длина национального номера
	FallbackDurationMinutes int    // длительность записи, если услуга удалена
	MaxByPhone              uint64 // лимит записей в ответе поиска по телефону
}

// Service сервис записей клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	config          Config
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *Service {
	if config.PhoneDigits <= 0 {
		config.PhoneDigits = domain.DefaultPhoneDigits
	}
	if config.FallbackDurationMinutes <= 0 {
		config.FallbackDurationMinutes = domain.DefaultFallbackDurationMin
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		config:          config,
		logger:          logger,
	}
}

// List возвращает записи для администратора, упорядоченные по дате и времени
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments status=%v", req.Status)

	filter := domain.AppointmentsFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}
	if req.Status != nil && *req.Status != "" {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListByPhone возвращает записи клиента по номеру телефона.
// Номер нормализуется до цифр, международный префикс отбрасывается.
func (s *Service) ListByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	digits := domain.NationalPhone(domain.PhoneDigits(phone), s.config.PhoneDigits)
	if len(digits) < domain.MinPhoneLookupDigits {
		s.logger.Warn("ListByPhone: phone has %d digits, need at least %d", len(digits), domain.MinPhoneLookupDigits)
		return nil, fmt.Errorf("%w: phone must have at least %d digits", ErrInvalidInput, domain.MinPhoneLookupDigits)
	}

	s.logger.Info("ListByPhone: fetching appointments for phone=***%s", digits[len(digits)-3:])

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		Phone: &digits,
		Limit: s.config.MaxByPhone,
	})
	if err != nil {
		s.logger.Error("ListByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByPhone - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus меняет статус записи.
// Переход в accepted проверяет в сериализуемой транзакции, что запись
// не пересекается с другими принятыми записями. Остальные переходы без проверок.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s -> status=%s", id, req.Status)

	status, ok := models.ToDomainStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Appointment
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Получаем запись (в транзакции строка блокируется)
		appointment, err := s.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		// 2. Для принятия проверяем пересечения с другими принятыми записями
		if status == domain.StatusAccepted && !appointment.IsAccepted() {
			if err := s.checkConflicts(ctx, appointment); err != nil {
				return err
			}
		}

		// 3. Меняем статус
		if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}

		appointment.Status = status
		updated = appointment
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrSlotConflict),
			errors.Is(err, appointmentRepo.ErrSlotTaken),
			errors.Is(err, appointmentRepo.ErrSerialization),
			errors.Is(err, txmanager.ErrSerializationFailure):
			s.logger.Warn("UpdateStatus: appointment id=%s conflicts with an accepted appointment: %v", id, err)
			return nil, ErrSlotConflict
		default:
			s.logger.Error("UpdateStatus: failed for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, status)
	return models.FromDomainAppointment(updated), nil
}

func (s *Service) checkConflicts(ctx context.Context, appointment *domain.Appointment) error {
	accepted, err := s.appointmentRepo.ListOccupying(ctx, appointment.Date, []domain.AppointmentStatus{domain.StatusAccepted})
	if err != nil {
		return err
	}

	others := make([]*domain.Appointment, 0, len(accepted))
	for _, other := range accepted {
		if other.ID != appointment.ID {
			others = append(others, other)
		}
	}

	duration := appointment.DurationOr(s.config.FallbackDurationMinutes)
	conflicts := availability.Conflicts(appointment.Time, duration, others, s.config.FallbackDurationMinutes)
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: overlaps appointment id=%s at %s", ErrSlotConflict, conflicts[0].ID, conflicts[0].Time)
	}

	return nil
}
