package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// BusinessHour is one opening block on a day of the week.
// A day may have several disjoint blocks (e.g. 09:00-13:00 and 16:00-20:00).
type BusinessHour struct {
	ID        uuid.UUID
	DayOfWeek int // 0 = Monday ... 6 = Sunday
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// IsValid returns true if the block has a known day and starts before it ends
func (h *BusinessHour) IsValid() bool {
	return ValidDayIndex(h.DayOfWeek) &&
		h.StartTime.Validate() == nil &&
		h.EndTime.Validate() == nil &&
		h.StartTime.IsBefore(h.EndTime)
}

// Overlaps returns true if both blocks are on the same day and share any minute
func (h *BusinessHour) Overlaps(other *BusinessHour) bool {
	if h.DayOfWeek != other.DayOfWeek {
		return false
	}
	return h.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(h.EndTime)
}

// DayName returns the display label of the block's day
func (h *BusinessHour) DayName() string {
	if !ValidDayIndex(h.DayOfWeek) {
		return ""
	}
	return DayNames[h.DayOfWeek]
}
