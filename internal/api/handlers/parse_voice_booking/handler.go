package parse_voice_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	parseVoiceBooking "github.com/m04kA/salon-booking/internal/usecase/parse_voice_booking"
)

const (
	msgInvalidRequest    = "texto no válido"
	msgNothingRecognized = "no se ha reconocido ningún dato de la cita"
)

type Handler struct {
	useCase ParseVoiceBookingUseCase
	logger  Logger
}

func NewHandler(useCase ParseVoiceBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/voice/parse
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ParseVoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/voice/parse - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &parseVoiceBooking.Request{Text: req.Text})
	if err != nil {
		switch {
		case errors.Is(err, parseVoiceBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/voice/parse - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, parseVoiceBooking.ErrNothingRecognized):
			h.logger.Warn("POST /admin/voice/parse - Nothing recognized: text_len=%d", len(req.Text))
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNothingRecognized)

		default:
			h.logger.Error("POST /admin/voice/parse - Failed to parse text: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/voice/parse - Draft parsed: name=%t, date=%t, time=%t, service=%t",
		result.Name != "", result.Date != nil, result.Time != nil, result.ServiceID != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
