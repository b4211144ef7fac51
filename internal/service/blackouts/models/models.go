package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается, когда время не в формате HH:MM
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// Request модели

// CreateBlockedSlotRequest запрос на блокировку даты или интервала.
// Без startTime и endTime блокируется весь день.
type CreateBlockedSlotRequest struct {
	Date      string  `json:"date"`                // "2025-04-18"
	StartTime *string `json:"startTime,omitempty"` // "12:00"
	EndTime   *string `json:"endTime,omitempty"`   // "13:00"
	Reason    *string `json:"reason,omitempty"`
}

// ListBlockedSlotsRequest фильтр списка блокировок (границы включительно)
type ListBlockedSlotsRequest struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	StartTime  *string   `json:"startTime"`
	EndTime    *string   `json:"endTime"`
	IsWholeDay bool      `json:"isWholeDay"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	resp := &BlockedSlotResponse{
		ID:         b.ID.String(),
		Date:       b.Date.Format(domain.DateFormat),
		IsWholeDay: b.IsWholeDay(),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
	if b.StartTime != nil {
		start := b.StartTime.String()
		resp.StartTime = &start
	}
	if b.EndTime != nil {
		end := b.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(blocks []*domain.BlockedSlot) *BlockedSlotListResponse {
	resp := &BlockedSlotListResponse{
		BlockedSlots: make([]BlockedSlotResponse, 0, len(blocks)),
	}

	for _, block := range blocks {
		if blockResp := FromDomainBlockedSlot(block); blockResp != nil {
			resp.BlockedSlots = append(resp.BlockedSlots, *blockResp)
		}
	}

	return resp
}

// ToDomainBlockedSlot конвертирует запрос в domain модель.
// Пустые строки времени считаются отсутствующими.
func (r *CreateBlockedSlotRequest) ToDomainBlockedSlot() (*domain.BlockedSlot, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return nil, ErrInvalidDate
	}

	block := &domain.BlockedSlot{Date: date}

	if start := optional(r.StartTime); start != nil {
		t, err := types.NewTimeStringFromString(*start)
		if err != nil {
			return nil, ErrInvalidTime
		}
		block.StartTime = &t
	}
	if end := optional(r.EndTime); end != nil {
		t, err := types.NewTimeStringFromString(*end)
		if err != nil {
			return nil, ErrInvalidTime
		}
		block.EndTime = &t
	}
	if reason := optional(r.Reason); reason != nil {
		block.Reason = reason
	}

	return block, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
