package parse_voice_booking

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/voiceparse"
)

// UseCase use case для разбора продиктованной записи
type UseCase struct {
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceRepo ServiceRepository, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute разбирает текст в черновик записи. Запись не создается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, fmt.Errorf("%w: text must be at most %d characters", ErrInvalidInput, MaxTextLength)
	}

	uc.logger.Info("ParseVoiceBooking: parsing %d characters", utf8.RuneCountInString(text))

	// 2. Получаем услуги для сопоставления по названию
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ParseVoiceBooking: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	// 3. Разбираем текст
	draft := voiceparse.Parse(text, services, uc.timeProvider.Now())
	if draft.Empty() {
		uc.logger.Warn("ParseVoiceBooking: nothing recognized")
		return nil, ErrNothingRecognized
	}

	response := &Response{
		Transcript: text,
		Name:       draft.Name,
		Phone:      draft.Phone,
		Date:       draft.Date,
		Time:       draft.Time,
		ServiceID:  draft.ServiceID,
	}
	if draft.ServiceID != nil {
		for _, s := range services {
			if s.ID == *draft.ServiceID {
				response.ServiceName = s.Name
				break
			}
		}
	}

	uc.logger.Info("ParseVoiceBooking: recognized name=%t, date=%t, time=%t, service=%t",
		draft.Name != "", draft.Date != nil, draft.Time != nil, draft.ServiceID != nil)

	return response, nil
}
