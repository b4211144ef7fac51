package settings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/m04kA/salon-booking/internal/domain"
	settingsRepo "github.com/m04kA/salon-booking/internal/infra/storage/settings"
	"github.com/m04kA/salon-booking/internal/service/settings/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// Service сервис настроек записи и оформления
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// BookingSettings возвращает политику записи как domain модель.
// Используется сценариями записи; при отсутствии строки возвращает значения по умолчанию.
func (s *Service) BookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	settings, err := s.settingsRepo.GetBooking(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultBookingSettings(), nil
		}
		s.logger.Error("BookingSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: BookingSettings - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// GetBooking возвращает политику записи
func (s *Service) GetBooking(ctx context.Context) (*models.BookingSettingsResponse, error) {
	s.logger.Info("GetBooking: fetching booking settings")

	settings, err := s.BookingSettings(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBookingSettings(settings), nil
}

// UpdateBooking частично обновляет политику записи
func (s *Service) UpdateBooking(ctx context.Context, req *models.UpdateBookingSettingsRequest) (*models.BookingSettingsResponse, error) {
	s.logger.Info("UpdateBooking: updating booking settings policy=%v, maxMonthsAhead=%v", req.SameDayPolicy, req.MaxMonthsAhead)

	settings, err := s.BookingSettings(ctx)
	if err != nil {
		return nil, err
	}

	req.ApplyToBookingSettings(settings)
	if !settings.SameDayPolicy.IsValid() {
		s.logger.Warn("UpdateBooking: invalid policy=%s", settings.SameDayPolicy)
		return nil, fmt.Errorf("%w: sameDayPolicy must be one of same_day, next_day, next_week", ErrInvalidInput)
	}
	if settings.MaxMonthsAhead < domain.MinMaxMonthsAhead || settings.MaxMonthsAhead > domain.MaxMaxMonthsAhead {
		s.logger.Warn("UpdateBooking: invalid maxMonthsAhead=%d", settings.MaxMonthsAhead)
		return nil, fmt.Errorf("%w: maxMonthsAhead must be between %d and %d",
			ErrInvalidInput, domain.MinMaxMonthsAhead, domain.MaxMaxMonthsAhead)
	}

	saved, err := s.settingsRepo.UpsertBooking(ctx, settings)
	if err != nil {
		s.logger.Error("UpdateBooking: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBooking: booking settings saved policy=%s, maxMonthsAhead=%d", saved.SameDayPolicy, saved.MaxMonthsAhead)
	return models.FromDomainBookingSettings(saved), nil
}

// GetCustomization возвращает оформление главной страницы
func (s *Service) GetCustomization(ctx context.Context) (*models.CustomizationResponse, error) {
	s.logger.Info("GetCustomization: fetching customization")

	customization, err := s.customization(ctx, "GetCustomization")
	if err != nil {
		return nil, err
	}

	return models.FromDomainCustomization(customization), nil
}

// UpdateCustomization частично обновляет оформление главной страницы
func (s *Service) UpdateCustomization(ctx context.Context, req *models.UpdateCustomizationRequest) (*models.CustomizationResponse, error) {
	s.logger.Info("UpdateCustomization: updating customization")

	customization, err := s.customization(ctx, "UpdateCustomization")
	if err != nil {
		return nil, err
	}

	req.ApplyToCustomization(customization)
	if err := validateCustomization(customization); err != nil {
		s.logger.Warn("UpdateCustomization: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.settingsRepo.UpsertCustomization(ctx, customization)
	if err != nil {
		s.logger.Error("UpdateCustomization: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCustomization - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomization(saved), nil
}

func (s *Service) customization(ctx context.Context, op string) (*domain.CustomizationSettings, error) {
	customization, err := s.settingsRepo.GetCustomization(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultCustomizationSettings(), nil
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return customization, nil
}

func validateCustomization(c *domain.CustomizationSettings) error {
	texts := map[string]string{
		"businessName":        c.BusinessName,
		"welcomeTitle":        c.WelcomeTitle,
		"welcomeSubtitle":     c.WelcomeSubtitle,
		"bookingInstructions": c.BookingInstructions,
	}
	for field, value := range texts {
		if utf8.RuneCountInString(value) > domain.MaxCustomizationLength {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, domain.MaxCustomizationLength)
		}
	}
	if c.HeroImageURL != nil && utf8.RuneCountInString(*c.HeroImageURL) > domain.MaxCustomizationLength {
		return fmt.Errorf("%w: heroImageUrl must be at most %d characters", ErrInvalidInput, domain.MaxCustomizationLength)
	}

	colors := map[string]string{
		"primaryColor":             c.PrimaryColor,
		"businessNameColor":        c.BusinessNameColor,
		"welcomeTitleColor":        c.WelcomeTitleColor,
		"welcomeSubtitleColor":     c.WelcomeSubtitleColor,
		"bookingInstructionsColor": c.BookingInstructionsColor,
	}
	for field, value := range colors {
		if value != "" && !hexColor.MatchString(value) {
			return fmt.Errorf("%w: %s must be a #RRGGBB color", ErrInvalidInput, field)
		}
	}

	return nil
}
