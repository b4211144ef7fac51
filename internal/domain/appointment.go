package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// AppointmentStatus represents the review state of an appointment
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusAccepted AppointmentStatus = "accepted"
	StatusRejected AppointmentStatus = "rejected"
)

// IsValid returns true for the three known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Appointment is a customer's request for a service at a date and time
type Appointment struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	Name      string
	Phone     string
	Date      time.Time
	Time      types.TimeString
	Status    AppointmentStatus
	CreatedAt time.Time

	// Joined from services on read; nil when the service was deleted
	Service *AppointmentService
}

// AppointmentService is the service summary embedded in appointment reads
type AppointmentService struct {
	Name            string
	DurationMinutes int
	Price           *float64
}

// DurationOr returns the joined service duration, or fallback when unknown
func (a *Appointment) DurationOr(fallback int) int {
	if a.Service == nil || a.Service.DurationMinutes <= 0 {
		return fallback
	}
	return a.Service.DurationMinutes
}

// IsAccepted returns true if staff accepted the appointment
func (a *Appointment) IsAccepted() bool {
	return a.Status == StatusAccepted
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Status   *AppointmentStatus
	Statuses []AppointmentStatus // используется для занятости слотов
	DateFrom *time.Time
	DateTo   *time.Time
	Phone    *string
	Limit    uint64
}

// AppointmentStats counters for the admin dashboard
type AppointmentStats struct {
	Pending       int
	Accepted      int
	Rejected      int
	Total         int
	AcceptedToday int
}

// OccupyingStatuses statuses whose appointments take up time in the schedule.
// Pending requests occupy slots only when pendingBlocks is set.
func OccupyingStatuses(pendingBlocks bool) []AppointmentStatus {
	if pendingBlocks {
		return []AppointmentStatus{StatusAccepted, StatusPending}
	}
	return []AppointmentStatus{StatusAccepted}
}
