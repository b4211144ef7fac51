package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/availability"
	"github.com/m04kA/salon-booking/internal/domain"
	serviceRepo "github.com/m04kA/salon-booking/internal/infra/storage/service"
)

// UseCase use case для получения слотов записи на дату
type UseCase struct {
	serviceRepo      ServiceRepository
	businessHourRepo BusinessHourRepository
	blockedSlotRepo  BlockedSlotRepository
	appointmentRepo  AppointmentRepository
	config           Config
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	businessHourRepo BusinessHourRepository,
	blockedSlotRepo BlockedSlotRepository,
	appointmentRepo AppointmentRepository,
	config Config,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		businessHourRepo: businessHourRepo,
		blockedSlotRepo:  blockedSlotRepo,
		appointmentRepo:  appointmentRepo,
		config:           config,
		timeProvider:     &RealTimeProvider{Location: location},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов.
// Закрытый день, блокировка на весь день и неизвестная услуга дают пустой список, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	dayIndex := domain.DayIndex(date)
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, day=%d",
		req.ServiceID, date.Format(domain.DateFormat), dayIndex)

	response := &Response{
		Date:      date,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}

	// 2. Получаем рабочие часы на день недели
	hours, err := uc.businessHourRepo.ListByDay(ctx, dayIndex)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours for day=%d: %v", dayIndex, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if len(hours) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on day=%d", dayIndex)
		return response, nil
	}

	// 3. Получаем блокировки на дату
	blocks, err := uc.blockedSlotRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}
	if availability.HasWholeDayBlock(blocks) {
		uc.logger.Info("GetAvailableSlots: date=%s is blocked for the whole day", date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	response.DurationMinutes = service.DurationMinutes

	// 5. Получаем записи, которые занимают время
	occupying, err := uc.appointmentRepo.ListOccupying(ctx, date, domain.OccupyingStatuses(uc.config.PendingBlocksSlots))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Строим сетку слотов
	computed := availability.Compute(availability.Input{
		Date:                    date,
		Now:                     uc.timeProvider.Now(),
		Hours:                   hours,
		Blocks:                  blocks,
		Occupying:               occupying,
		DurationMinutes:         service.DurationMinutes,
		StepMinutes:             uc.config.StepMinutes,
		FallbackDurationMinutes: uc.config.FallbackDurationMinutes,
	})

	response.Slots = make([]Slot, len(computed))
	for i, slot := range computed {
		response.Slots[i] = Slot{StartTime: slot.Time, Available: slot.Available}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(response.Slots), req.ServiceID, date.Format(domain.DateFormat))

	return response, nil
}
