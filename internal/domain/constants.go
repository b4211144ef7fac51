package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking defaults
const (
	DefaultSlotStepMinutes      = 15
	DefaultFallbackDurationMin  = 30
	DefaultPhoneDigits          = 9
	DefaultMaxMonthsAhead       = 3
	DefaultBookingWindowDays    = 30
	DefaultSameDayPolicy        = SameDayPolicySameDay
	DefaultAppointmentStatus    = StatusPending
	DefaultAdminAppointmentStat = StatusAccepted
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServiceNameLength      = 100
	MaxCustomerNameLength     = 100
	MinPhoneLookupDigits      = 9
	MinMaxMonthsAhead         = 1
	MaxMaxMonthsAhead         = 12
	MaxBlockReasonLength      = 200
	MaxCustomizationLength    = 500
	MinUsernameLength         = 3
	MaxUsernameLength         = 64
)
