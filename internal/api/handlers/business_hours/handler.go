package business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/hours"
	"github.com/m04kA/salon-booking/internal/service/hours/models"
)

const (
	msgInvalidHourID      = "identificador de horario no válido"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidData        = "horario no válido: día de 0 a 6 y hora de inicio anterior a la de fin"
	msgOverlap            = "el horario se solapa con otro tramo del mismo día"
	msgNotFound           = "horario no encontrado"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/business-hours
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/business-hours - Failed to list business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/business-hours
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BusinessHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/business-hours", err)
		return
	}

	h.logger.Info("POST /admin/business-hours - Business hour created: hour_id=%s, day=%d", result.ID, result.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/business-hours/{hourId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "hourId")
	if err != nil {
		h.logger.Warn("PUT /admin/business-hours/{id} - Invalid hour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHourID)
		return
	}

	var req models.BusinessHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/business-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/business-hours/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/business-hours/{id} - Business hour updated: hour_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/business-hours/{hourId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "hourId")
	if err != nil {
		h.logger.Warn("DELETE /admin/business-hours/{id} - Invalid hour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHourID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/business-hours/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/business-hours/{id} - Business hour deleted: hour_id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, hours.ErrBusinessHourNotFound):
		h.logger.Warn("%s - Business hour not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, hours.ErrOverlap):
		h.logger.Warn("%s - Overlap: %v", route, err)
		handlers.RespondConflict(w, msgOverlap)

	case errors.Is(err, hours.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
