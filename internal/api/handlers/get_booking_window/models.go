package get_booking_window

import (
	"github.com/m04kA/salon-booking/internal/domain"
	getBookingWindow "github.com/m04kA/salon-booking/internal/usecase/get_booking_window"
)

// BookingWindowResponse HTTP response model
type BookingWindowResponse struct {
	SameDayPolicy  string   `json:"sameDayPolicy"`
	MaxMonthsAhead int      `json:"maxMonthsAhead"`
	EarliestDate   string   `json:"earliestDate"`
	LatestDate     string   `json:"latestDate"`
	OpenDates      []string `json:"openDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingWindow.Response) *BookingWindowResponse {
	dates := make([]string, len(resp.OpenDates))
	for i, d := range resp.OpenDates {
		dates[i] = d.Format(domain.DateFormat)
	}

	return &BookingWindowResponse{
		SameDayPolicy:  resp.SameDayPolicy,
		MaxMonthsAhead: resp.MaxMonthsAhead,
		EarliestDate:   resp.EarliestDate.Format(domain.DateFormat),
		LatestDate:     resp.LatestDate.Format(domain.DateFormat),
		OpenDates:      dates,
	}
}
