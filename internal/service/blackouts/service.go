package blackouts

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/blockedslot"
	"github.com/m04kA/salon-booking/internal/service/blackouts/models"
)

// Service сервис блокировок расписания
type Service struct {
	blockRepo BlockedSlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// List возвращает блокировки, опционально в диапазоне дат
func (s *Service) List(ctx context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("List: fetching blocked slots from=%v to=%v", req.DateFrom, req.DateTo)

	if req.DateFrom != nil && req.DateTo != nil && req.DateTo.Before(*req.DateFrom) {
		s.logger.Warn("List: invalid range from=%s to=%s",
			req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.List(ctx, domain.BlockedSlotsFilter{DateFrom: req.DateFrom, DateTo: req.DateTo})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlotList(blocks), nil
}

// Create блокирует весь день или интервал [startTime, endTime)
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking date=%s", req.Date)

	block, err := req.ToDomainBlockedSlot()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateBlock(block); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blocked slot id=%s (wholeDay=%t)", created.ID, created.IsWholeDay())
	return models.FromDomainBlockedSlot(created), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting blocked slot id=%s", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Delete: blocked slot id=%s not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for blocked slot id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateBlock(block *domain.BlockedSlot) error {
	if (block.StartTime == nil) != (block.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidInput)
	}
	if !block.IsWholeDay() && !block.StartTime.IsBefore(*block.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}
	if block.Reason != nil && utf8.RuneCountInString(*block.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}
	return nil
}
