package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/availability"
	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/salon-booking/internal/infra/storage/service"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

// UseCase use case для создания записи клиентом или администратором
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	businessHourRepo BusinessHourRepository
	blockedSlotRepo  BlockedSlotRepository
	settings         BookingSettingsProvider
	txManager        TransactionManager
	config           Config
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	businessHourRepo BusinessHourRepository,
	blockedSlotRepo BlockedSlotRepository,
	settings BookingSettingsProvider,
	txManager TransactionManager,
	config Config,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		businessHourRepo: businessHourRepo,
		blockedSlotRepo:  blockedSlotRepo,
		settings:         settings,
		txManager:        txManager,
		config:           config,
		timeProvider:     &RealTimeProvider{Location: location},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Повторная проверка слота и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	valid, err := validateRequest(req, uc.config.PhoneDigits)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s, byAdmin=%t",
		req.ServiceID, date.Format(domain.DateFormat), valid.time, req.ByAdmin)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Клиент может записаться только в пределах окна записи
	if !req.ByAdmin {
		settings, err := uc.settings.BookingSettings(ctx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booking settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get booking settings: %v", ErrInternal, err)
		}

		earliest, latest := settings.EarliestDate(now), settings.LatestDate(now)
		day := domain.CivilDate(date)
		if day.Before(domain.CivilDate(earliest)) || day.After(domain.CivilDate(latest)) {
			uc.logger.Warn("CreateAppointment: date=%s outside window [%s, %s]",
				date.Format(domain.DateFormat), earliest.Format(domain.DateFormat), latest.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: bookable dates are %s to %s",
				ErrOutsideBookingWindow, earliest.Format(domain.DateFormat), latest.Format(domain.DateFormat))
		}
	}

	var result *domain.Appointment

	// 4. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем услугу
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 4.2. Получаем рабочие часы, блокировки и занимающие записи (с блокировкой строк)
		hours, err := uc.businessHourRepo.ListByDay(txCtx, domain.DayIndex(date))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get business hours: %v", err)
			return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
		}

		blocks, err := uc.blockedSlotRepo.ListByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		occupying, err := uc.appointmentRepo.ListOccupying(txCtx, date, domain.OccupyingStatuses(uc.config.PendingBlocksSlots))
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSerialization) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.3. Проверяем время
		if req.ByAdmin {
			if !uc.adminSlotFree(hours, blocks, occupying, valid, service.DurationMinutes) {
				uc.logger.Warn("CreateAppointment: admin slot %s on %s is not available",
					valid.time, date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		} else {
			input := availability.Input{
				Date:                    date,
				Now:                     now,
				Hours:                   hours,
				Blocks:                  blocks,
				Occupying:               occupying,
				DurationMinutes:         service.DurationMinutes,
				StepMinutes:             uc.config.StepMinutes,
				FallbackDurationMinutes: uc.config.FallbackDurationMinutes,
			}
			if !availability.SlotFree(input, valid.time) {
				uc.logger.Warn("CreateAppointment: slot %s on %s is not available",
					valid.time, date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 4.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ServiceID: service.ID,
			Name:      valid.name,
			Phone:     valid.phone,
			Date:      date,
			Time:      valid.time,
			Status:    valid.status,
		})
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken), errors.Is(err, appointmentRepo.ErrSerialization):
				uc.logger.Warn("CreateAppointment: slot %s on %s taken concurrently: %v",
					valid.time, date.Format(domain.DateFormat), err)
				return ErrSlotNotAvailable
			case errors.Is(err, appointmentRepo.ErrServiceNotFound):
				return ErrServiceNotFound
			default:
				uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}
		}

		created.Service = &domain.AppointmentService{
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateAppointment: serialization failure on commit: %v", err)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			uc.logger.Error("CreateAppointment: transaction error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s status=%s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.Service.Name,
		DurationMinutes: result.Service.DurationMinutes,
		ServicePrice:    result.Service.Price,
		Name:            result.Name,
		Phone:           result.Phone,
		Date:            result.Date,
		Time:            result.Time,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// adminSlotFree администратор не привязан к сетке слотов: услуга должна помещаться
// в рабочий блок, время не заблокировано, а принятая запись не пересекается с другими принятыми.
func (uc *UseCase) adminSlotFree(
	hours []*domain.BusinessHour,
	blocks []*domain.BlockedSlot,
	occupying []*domain.Appointment,
	valid *validatedRequest,
	durationMinutes int,
) bool {
	if !availability.FitsHours(hours, valid.time, durationMinutes) {
		return false
	}
	if availability.HasWholeDayBlock(blocks) || availability.IsBlocked(blocks, valid.time) {
		return false
	}
	if valid.status != domain.StatusAccepted {
		return true
	}

	accepted := make([]*domain.Appointment, 0, len(occupying))
	for _, a := range occupying {
		if a.IsAccepted() {
			accepted = append(accepted, a)
		}
	}
	return len(availability.Conflicts(valid.time, durationMinutes, accepted, uc.config.FallbackDurationMinutes)) == 0
}
