package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	createAppointment "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequest       = "datos de la cita no válidos"
	msgInvalidFields        = "servicio o fecha no válidos"
	msgServiceNotFound      = "servicio no encontrado"
	msgOutsideBookingWindow = "la fecha está fuera del periodo de reservas"
	msgSlotNotAvailable     = "la hora seleccionada ya no está disponible"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	byAdmin bool
	route   string
	logger  Logger
}

// NewHandler обработчик публичной записи клиента (всегда pending)
func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		route:   "POST /appointments",
		logger:  logger,
	}
}

// NewAdminHandler обработчик записи, создаваемой администратором
func NewAdminHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		byAdmin: true,
		route:   "POST /admin/appointments",
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments и POST /api/v1/admin/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.byAdmin)
	if err != nil {
		h.logger.Warn("%s - Invalid service ID or date: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%s", h.route, useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrOutsideBookingWindow):
			h.logger.Warn("%s - Date outside booking window: date=%s", h.route, req.Date)
			handlers.RespondBadRequest(w, msgOutsideBookingWindow)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: date=%s, time=%s", h.route, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("%s - Failed to create appointment: service_id=%s, error=%v", h.route, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment created successfully: appointment_id=%s, status=%s", h.route, result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
