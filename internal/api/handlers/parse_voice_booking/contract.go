package parse_voice_booking

import (
	"context"

	parseVoiceBooking "github.com/m04kA/salon-booking/internal/usecase/parse_voice_booking"
)

type ParseVoiceBookingUseCase interface {
	Execute(ctx context.Context, req *parseVoiceBooking.Request) (*parseVoiceBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
