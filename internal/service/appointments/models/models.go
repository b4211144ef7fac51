package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модели

// ListAppointmentsRequest фильтр списка записей для администратора
type ListAppointmentsRequest struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending | accepted | rejected
}

// Response модели

// ServiceSummary краткие данные услуги внутри записи
type ServiceSummary struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        string          `json:"id"`
	ServiceID *string         `json:"serviceId"` // nil, если услуга удалена
	Service   *ServiceSummary `json:"service"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Date      string          `json:"date"` // "2025-04-21"
	Time      string          `json:"time"` // "10:00"
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Phone:     a.Phone,
		Date:      a.Date.Format(domain.DateFormat),
		Time:      a.Time.String(),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.ServiceID != uuid.Nil {
		serviceID := a.ServiceID.String()
		resp.ServiceID = &serviceID
	}
	if a.Service != nil {
		resp.Service = &ServiceSummary{
			Name:            a.Service.Name,
			DurationMinutes: a.Service.DurationMinutes,
			Price:           a.Service.Price,
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if appointmentResp := FromDomainAppointment(appointment); appointmentResp != nil {
			resp.Appointments = append(resp.Appointments, *appointmentResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в статус записи
func ToDomainStatus(s string) (domain.AppointmentStatus, bool) {
	status := domain.AppointmentStatus(s)
	return status, status.IsValid()
}
