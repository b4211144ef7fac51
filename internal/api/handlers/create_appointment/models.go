package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	createAppointment "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"` // "2025-04-21"
	Time      string  `json:"time"` // "10:00"
	Status    *string `json:"status,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	DurationMinutes int       `json:"durationMinutes"`
	ServicePrice    *float64  `json:"servicePrice"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Статус из тела учитывается только для администратора.
func (r *CreateAppointmentRequest) ToUseCaseRequest(byAdmin bool) (*createAppointment.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		ServiceID: serviceID,
		Name:      r.Name,
		Phone:     r.Phone,
		Date:      date,
		Time:      r.Time,
		ByAdmin:   byAdmin,
	}
	if byAdmin {
		req.Status = r.Status
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID.String(),
		ServiceID:       resp.ServiceID.String(),
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		ServicePrice:    resp.ServicePrice,
		Name:            resp.Name,
		Phone:           resp.Phone,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
	}
}
