package get_booking_window

import (
	"context"

	getBookingWindow "github.com/m04kA/salon-booking/internal/usecase/get_booking_window"
)

type GetBookingWindowUseCase interface {
	Execute(ctx context.Context) (*getBookingWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
