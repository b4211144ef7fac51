package domain

import "time"

// SameDayPolicy controls the earliest date a customer may book
type SameDayPolicy string

const (
	SameDayPolicySameDay  SameDayPolicy = "same_day"
	SameDayPolicyNextDay  SameDayPolicy = "next_day"
	SameDayPolicyNextWeek SameDayPolicy = "next_week"
)

// IsValid returns true for the known policies
func (p SameDayPolicy) IsValid() bool {
	switch p {
	case SameDayPolicySameDay, SameDayPolicyNextDay, SameDayPolicyNextWeek:
		return true
	default:
		return false
	}
}

// LeadDays returns how many days after today the first bookable date is
func (p SameDayPolicy) LeadDays() int {
	switch p {
	case SameDayPolicyNextDay:
		return 1
	case SameDayPolicyNextWeek:
		return 7
	default:
		return 0
	}
}

// BookingSettings is the singleton booking policy row
type BookingSettings struct {
	SameDayPolicy  SameDayPolicy
	MaxMonthsAhead int
	UpdatedAt      time.Time
}

// DefaultBookingSettings used when no row exists yet
func DefaultBookingSettings() *BookingSettings {
	return &BookingSettings{
		SameDayPolicy:  DefaultSameDayPolicy,
		MaxMonthsAhead: DefaultMaxMonthsAhead,
	}
}

// EarliestDate first bookable calendar date for a customer at instant now
func (s *BookingSettings) EarliestDate(now time.Time) time.Time {
	return DateOnly(now).AddDate(0, 0, s.SameDayPolicy.LeadDays())
}

// LatestDate last bookable calendar date for a customer at instant now
func (s *BookingSettings) LatestDate(now time.Time) time.Time {
	return DateOnly(now).AddDate(0, s.MaxMonthsAhead, 0)
}

// CustomizationSettings is the singleton landing page texts and colors row
type CustomizationSettings struct {
	BusinessName             string
	WelcomeTitle             string
	WelcomeSubtitle          string
	BookingInstructions      string
	HeroImageURL             *string
	PrimaryColor             string
	BusinessNameColor        string
	WelcomeTitleColor        string
	WelcomeSubtitleColor     string
	BookingInstructionsColor string
	UpdatedAt                time.Time
}

// DefaultCustomizationSettings used when no row exists yet
func DefaultCustomizationSettings() *CustomizationSettings {
	return &CustomizationSettings{
		BusinessName:             "Mi Negocio",
		WelcomeTitle:             "Reserva tu cita",
		WelcomeSubtitle:          "Elige el servicio, el día y la hora que mejor te vengan",
		BookingInstructions:      "Selecciona un servicio y una fecha para ver las horas disponibles",
		PrimaryColor:             "#6366F1",
		BusinessNameColor:        "#111827",
		WelcomeTitleColor:        "#111827",
		WelcomeSubtitleColor:     "#4B5563",
		BookingInstructionsColor: "#4B5563",
	}
}
