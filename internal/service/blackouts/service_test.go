package blackouts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/blockedslot"
	"github.com/m04kA/salon-booking/internal/service/blackouts/models"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/ptr"
)

type fakeRepo struct {
	blocks     []*domain.BlockedSlot
	lastFilter domain.BlockedSlotsFilter
}

func (r *fakeRepo) Create(_ context.Context, b *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	r.blocks = append(r.blocks, b)
	return b, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	r.lastFilter = filter
	return r.blocks, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, b := range r.blocks {
		if b.ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return blockRepo.ErrBlockedSlotNotFound
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateBlockedSlotRequest
		wantErr   error
		wholeDay  bool
		wantStart string
	}{
		{
			name:     "whole day",
			req:      models.CreateBlockedSlotRequest{Date: "2025-04-18", Reason: ptr.Ptr("Viernes Santo")},
			wholeDay: true,
		},
		{
			name:     "empty times mean whole day",
			req:      models.CreateBlockedSlotRequest{Date: "2025-04-18", StartTime: ptr.Ptr(""), EndTime: ptr.Ptr(" ")},
			wholeDay: true,
		},
		{
			name:      "partial",
			req:       models.CreateBlockedSlotRequest{Date: "2025-04-18", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("13:00")},
			wantStart: "12:00",
		},
		{
			name:    "only start",
			req:     models.CreateBlockedSlotRequest{Date: "2025-04-18", StartTime: ptr.Ptr("12:00")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "inverted range",
			req:     models.CreateBlockedSlotRequest{Date: "2025-04-18", StartTime: ptr.Ptr("13:00"), EndTime: ptr.Ptr("12:00")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     models.CreateBlockedSlotRequest{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "reason too long",
			req:     models.CreateBlockedSlotRequest{Date: "2025-04-18", Reason: ptr.Ptr(strings.Repeat("a", 201))},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{}, logger.NewNop())

			got, err := svc.Create(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2025-04-18", got.Date)
			assert.Equal(t, tt.wholeDay, got.IsWholeDay)
			if tt.wantStart != "" {
				require.NotNil(t, got.StartTime)
				assert.Equal(t, tt.wantStart, *got.StartTime)
			}
		})
	}
}

func TestService_List_PassesRange(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	got, err := svc.List(context.Background(), &models.ListBlockedSlotsRequest{DateFrom: &from, DateTo: &to})

	require.NoError(t, err)
	assert.NotNil(t, got.BlockedSlots)
	assert.Equal(t, &from, repo.lastFilter.DateFrom)
	assert.Equal(t, &to, repo.lastFilter.DateTo)
}

func TestService_List_InvertedRange(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.NewNop())
	from := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), &models.ListBlockedSlotsRequest{DateFrom: &from, DateTo: &to})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.NewNop())

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrBlockedSlotNotFound)
}
