package get_booking_window

import (
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/domain"
)

type Handler struct {
	useCase GetBookingWindowUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-window - Failed to compute booking window: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-window - Window computed: earliest=%s, open_dates=%d",
		result.EarliestDate.Format(domain.DateFormat), len(result.OpenDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
