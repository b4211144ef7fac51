package models

import (
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модели

// UpdateBookingSettingsRequest частичное обновление политики записи
type UpdateBookingSettingsRequest struct {
	SameDayPolicy  *string `json:"sameDayPolicy,omitempty"`  // same_day | next_day | next_week
	MaxMonthsAhead *int    `json:"maxMonthsAhead,omitempty"` // 1..12
}

// UpdateCustomizationRequest частичное обновление оформления главной страницы
type UpdateCustomizationRequest struct {
	BusinessName             *string `json:"businessName,omitempty"`
	WelcomeTitle             *string `json:"welcomeTitle,omitempty"`
	WelcomeSubtitle          *string `json:"welcomeSubtitle,omitempty"`
	BookingInstructions      *string `json:"bookingInstructions,omitempty"`
	HeroImageURL             *string `json:"heroImageUrl,omitempty"` // пустая строка убирает картинку
	PrimaryColor             *string `json:"primaryColor,omitempty"`
	BusinessNameColor        *string `json:"businessNameColor,omitempty"`
	WelcomeTitleColor        *string `json:"welcomeTitleColor,omitempty"`
	WelcomeSubtitleColor     *string `json:"welcomeSubtitleColor,omitempty"`
	BookingInstructionsColor *string `json:"bookingInstructionsColor,omitempty"`
}

// Response модели

// BookingSettingsResponse ответ с политикой записи
type BookingSettingsResponse struct {
	SameDayPolicy  string     `json:"sameDayPolicy"`
	MaxMonthsAhead int        `json:"maxMonthsAhead"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"` // nil, пока настройки не сохранялись
}

// CustomizationResponse ответ с оформлением главной страницы
type CustomizationResponse struct {
	BusinessName             string     `json:"businessName"`
	WelcomeTitle             string     `json:"welcomeTitle"`
	WelcomeSubtitle          string     `json:"welcomeSubtitle"`
	BookingInstructions      string     `json:"bookingInstructions"`
	HeroImageURL             *string    `json:"heroImageUrl"`
	PrimaryColor             string     `json:"primaryColor"`
	BusinessNameColor        string     `json:"businessNameColor"`
	WelcomeTitleColor        string     `json:"welcomeTitleColor"`
	WelcomeSubtitleColor     string     `json:"welcomeSubtitleColor"`
	BookingInstructionsColor string     `json:"bookingInstructionsColor"`
	UpdatedAt                *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainBookingSettings конвертирует domain модель в DTO
func FromDomainBookingSettings(s *domain.BookingSettings) *BookingSettingsResponse {
	resp := &BookingSettingsResponse{
		SameDayPolicy:  string(s.SameDayPolicy),
		MaxMonthsAhead: s.MaxMonthsAhead,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromDomainCustomization конвертирует domain модель в DTO
func FromDomainCustomization(c *domain.CustomizationSettings) *CustomizationResponse {
	resp := &CustomizationResponse{
		BusinessName:             c.BusinessName,
		WelcomeTitle:             c.WelcomeTitle,
		WelcomeSubtitle:          c.WelcomeSubtitle,
		BookingInstructions:      c.BookingInstructions,
		HeroImageURL:             c.HeroImageURL,
		PrimaryColor:             c.PrimaryColor,
		BusinessNameColor:        c.BusinessNameColor,
		WelcomeTitleColor:        c.WelcomeTitleColor,
		WelcomeSubtitleColor:     c.WelcomeSubtitleColor,
		BookingInstructionsColor: c.BookingInstructionsColor,
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ApplyToBookingSettings применяет обновления к текущей политике
func (r *UpdateBookingSettingsRequest) ApplyToBookingSettings(s *domain.BookingSettings) {
	if r.SameDayPolicy != nil {
		s.SameDayPolicy = domain.SameDayPolicy(strings.TrimSpace(*r.SameDayPolicy))
	}
	if r.MaxMonthsAhead != nil {
		s.MaxMonthsAhead = *r.MaxMonthsAhead
	}
}

// ApplyToCustomization применяет обновления к текущему оформлению
func (r *UpdateCustomizationRequest) ApplyToCustomization(c *domain.CustomizationSettings) {
	setText(&c.BusinessName, r.BusinessName)
	setText(&c.WelcomeTitle, r.WelcomeTitle)
	setText(&c.WelcomeSubtitle, r.WelcomeSubtitle)
	setText(&c.BookingInstructions, r.BookingInstructions)
	setColor(&c.PrimaryColor, r.PrimaryColor)
	setColor(&c.BusinessNameColor, r.BusinessNameColor)
	setColor(&c.WelcomeTitleColor, r.WelcomeTitleColor)
	setColor(&c.WelcomeSubtitleColor, r.WelcomeSubtitleColor)
	setColor(&c.BookingInstructionsColor, r.BookingInstructionsColor)

	if r.HeroImageURL != nil {
		url := strings.TrimSpace(*r.HeroImageURL)
		if url == "" {
			c.HeroImageURL = nil
		} else {
			c.HeroImageURL = &url
		}
	}
}

func setText(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func setColor(dst *string, value *string) {
	if value != nil {
		*dst = strings.ToUpper(strings.TrimSpace(*value))
	}
}
