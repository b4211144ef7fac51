package models

import (
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"` // nil = цена не публикуется
}

// UpdateServiceRequest запрос на частичное обновление услуги
// Обновляются только переданные поля
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	RemovePrice     bool     `json:"removePrice,omitempty"` // убрать цену с витрины
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           *float64  `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}

// ToDomainService конвертирует CreateServiceRequest в domain модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	return &domain.Service{
		Name:            strings.TrimSpace(r.Name),
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// ApplyToService применяет обновления к существующей услуге
func (r *UpdateServiceRequest) ApplyToService(service *domain.Service) {
	if r.Name != nil {
		service.Name = strings.TrimSpace(*r.Name)
	}
	if r.DurationMinutes != nil {
		service.DurationMinutes = *r.DurationMinutes
	}
	if r.RemovePrice {
		service.Price = nil
	} else if r.Price != nil {
		service.Price = r.Price
	}
}
