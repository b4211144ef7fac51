package get_booking_window

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// UseCase use case для расчета окна записи
type UseCase struct {
	settings         BookingSettingsProvider
	businessHourRepo BusinessHourRepository
	blockedSlotRepo  BlockedSlotRepository
	windowDays       int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// windowDays ограничивает число дней в списке открытых дат.
func NewUseCase(
	settings BookingSettingsProvider,
	businessHourRepo BusinessHourRepository,
	blockedSlotRepo BlockedSlotRepository,
	windowDays int,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:         settings,
		businessHourRepo: businessHourRepo,
		blockedSlotRepo:  blockedSlotRepo,
		windowDays:       windowDays,
		timeProvider:     &RealTimeProvider{Location: location},
		logger:           logger,
	}
}

// Execute выполняет use case расчета окна записи
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Получаем настройки записи
	settings, err := uc.settings.BookingSettings(ctx)
	if err != nil {
		uc.logger.Error("GetBookingWindow: failed to get booking settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking settings: %v", ErrInternal, err)
	}

	// 2. Вычисляем границы окна
	now := uc.timeProvider.Now()
	earliest := domain.CivilDate(settings.EarliestDate(now))
	latest := domain.CivilDate(settings.LatestDate(now))

	last := earliest.AddDate(0, 0, uc.windowDays-1)
	if latest.Before(last) {
		last = latest
	}

	uc.logger.Info("GetBookingWindow: policy=%s, earliest=%s, latest=%s",
		settings.SameDayPolicy, earliest.Format(domain.DateFormat), latest.Format(domain.DateFormat))

	// 3. Получаем рабочие дни недели
	hours, err := uc.businessHourRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetBookingWindow: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	openDays := make(map[int]bool, 7)
	for _, h := range hours {
		openDays[h.DayOfWeek] = true
	}

	// 4. Получаем блокировки на весь день в диапазоне
	blocks, err := uc.blockedSlotRepo.List(ctx, domain.BlockedSlotsFilter{DateFrom: &earliest, DateTo: &last})
	if err != nil {
		uc.logger.Error("GetBookingWindow: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}
	closed := make(map[string]bool)
	for _, b := range blocks {
		if b.IsWholeDay() {
			closed[b.Date.Format(domain.DateFormat)] = true
		}
	}

	// 5. Собираем открытые даты
	openDates := make([]time.Time, 0)
	for day := earliest; !day.After(last); day = day.AddDate(0, 0, 1) {
		if openDays[domain.DayIndex(day)] && !closed[day.Format(domain.DateFormat)] {
			openDates = append(openDates, day)
		}
	}

	return &Response{
		SameDayPolicy:  string(settings.SameDayPolicy),
		MaxMonthsAhead: settings.MaxMonthsAhead,
		EarliestDate:   earliest,
		LatestDate:     latest,
		OpenDates:      openDates,
	}, nil
}
