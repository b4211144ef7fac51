package models

import "github.com/m04kA/salon-booking/internal/domain"

// DashboardResponse счетчики для главной страницы админки
type DashboardResponse struct {
	PendingAppointments  int `json:"pendingAppointments"`
	AcceptedAppointments int `json:"acceptedAppointments"`
	RejectedAppointments int `json:"rejectedAppointments"`
	TotalAppointments    int `json:"totalAppointments"`
	AcceptedToday        int `json:"acceptedToday"`
	Services             int `json:"services"`
	BusinessHours        int `json:"businessHours"`
}

// FromDomainStats заполняет счетчики записей
func FromDomainStats(stats *domain.AppointmentStats, services, businessHours int) *DashboardResponse {
	return &DashboardResponse{
		PendingAppointments:  stats.Pending,
		AcceptedAppointments: stats.Accepted,
		RejectedAppointments: stats.Rejected,
		TotalAppointments:    stats.Total,
		AcceptedToday:        stats.AcceptedToday,
		Services:             services,
		BusinessHours:        businessHours,
	}
}
