package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// BlockedSlot is a schedule blackout. Without times it blocks the whole date,
// otherwise the half-open range [StartTime, EndTime).
type BlockedSlot struct {
	ID        uuid.UUID
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	CreatedAt time.Time
}

// IsWholeDay returns true if the block covers the entire date
func (b *BlockedSlot) IsWholeDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}

// Covers reports whether a slot starting at t falls inside a partial block.
// Whole-day blocks are handled before slot generation and never match here.
func (b *BlockedSlot) Covers(t types.TimeString) bool {
	if b.StartTime == nil || b.EndTime == nil {
		return false
	}
	return !t.IsBefore(*b.StartTime) && t.IsBefore(*b.EndTime)
}

// BlockedSlotsFilter filter for listing blackouts
type BlockedSlotsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}
