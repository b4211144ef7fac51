package models

import (
	"errors"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// ErrInvalidTime возвращается, когда время не в формате HH:MM
var ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

// Request модели

// BusinessHourRequest запрос на создание или замену блока рабочих часов
type BusinessHourRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = понедельник ... 6 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "14:00"
}

// Response модели

// BusinessHourResponse ответ с данными блока рабочих часов
type BusinessHourResponse struct {
	ID        string    `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	DayName   string    `json:"dayName"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// BusinessHourListResponse ответ со списком блоков рабочих часов
type BusinessHourListResponse struct {
	BusinessHours []BusinessHourResponse `json:"businessHours"`
}

// Методы конвертации

// FromDomainBusinessHour конвертирует domain модель в DTO
func FromDomainBusinessHour(h *domain.BusinessHour) *BusinessHourResponse {
	if h == nil {
		return nil
	}

	return &BusinessHourResponse{
		ID:        h.ID.String(),
		DayOfWeek: h.DayOfWeek,
		DayName:   h.DayName(),
		StartTime: h.StartTime.String(),
		EndTime:   h.EndTime.String(),
		CreatedAt: h.CreatedAt,
	}
}

// FromDomainBusinessHourList конвертирует список domain моделей в DTO
func FromDomainBusinessHourList(hours []*domain.BusinessHour) *BusinessHourListResponse {
	resp := &BusinessHourListResponse{
		BusinessHours: make([]BusinessHourResponse, 0, len(hours)),
	}

	for _, hour := range hours {
		if hourResp := FromDomainBusinessHour(hour); hourResp != nil {
			resp.BusinessHours = append(resp.BusinessHours, *hourResp)
		}
	}

	return resp
}

// ToDomainBusinessHour конвертирует запрос в domain модель
func (r *BusinessHourRequest) ToDomainBusinessHour() (*domain.BusinessHour, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	return &domain.BusinessHour{
		DayOfWeek: r.DayOfWeek,
		StartTime: start,
		EndTime:   end,
	}, nil
}
