package appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/appointments"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
)

const (
	msgMissingPhone       = "el teléfono es obligatorio"
	msgInvalidPhone       = "teléfono no válido"
	msgInvalidID          = "identificador de cita no válido"
	msgInvalidDateFilter  = "formato de fecha no válido, se espera AAAA-MM-DD"
	msgInvalidStatus      = "estado no válido: pending, accepted o rejected"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgNotFound           = "cita no encontrada"
	msgSlotConflict       = "ya hay una cita aceptada en ese horario"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByPhone GET /api/v1/appointments?phone=
func (h *Handler) ListByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /appointments - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.ListByPhone(r.Context(), phone)
	if err != nil {
		h.respondServiceError(w, "GET /appointments", err)
		return
	}

	h.logger.Info("GET /appointments - Appointments by phone retrieved: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/admin/appointments
// Query params: status, dateFrom, dateTo (optional)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	var err error
	if req.DateFrom, err = handlers.QueryDate(r, "dateFrom"); err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}
	if req.DateTo, err = handlers.QueryDate(r, "dateTo"); err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /admin/appointments", err)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PATCH /admin/appointments/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Status updated: appointment_id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		h.logger.Warn("%s - Appointment not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, appointments.ErrInvalidStatus):
		h.logger.Warn("%s - Invalid status: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, appointments.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPhone)

	case errors.Is(err, appointments.ErrSlotConflict):
		h.logger.Warn("%s - Slot conflict: %v", route, err)
		handlers.RespondConflict(w, msgSlotConflict)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
