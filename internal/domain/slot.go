package domain

import "github.com/m04kA/salon-booking/pkg/types"

// TimeSlot is a candidate start time on a given date
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
