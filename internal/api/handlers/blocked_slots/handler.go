package blocked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/blackouts"
	"github.com/m04kA/salon-booking/internal/service/blackouts/models"
)

const (
	msgInvalidBlockID     = "identificador de bloqueo no válido"
	msgInvalidDateFilter  = "formato de fecha no válido, se espera AAAA-MM-DD"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidData        = "bloqueo no válido: indique ambas horas o ninguna, con inicio anterior al fin"
	msgNotFound           = "bloqueo no encontrado"
)

type Handler struct {
	service BlackoutsService
	logger  Logger
}

func NewHandler(service BlackoutsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/blocked-slots
// Query params: dateFrom, dateTo (optional, YYYY-MM-DD)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "dateFrom")
	if err != nil {
		h.logger.Warn("GET /admin/blocked-slots - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}
	to, err := handlers.QueryDate(r, "dateTo")
	if err != nil {
		h.logger.Warn("GET /admin/blocked-slots - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListBlockedSlotsRequest{DateFrom: from, DateTo: to})
	if err != nil {
		h.respondServiceError(w, "GET /admin/blocked-slots", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/blocked-slots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/blocked-slots", err)
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Blocked slot created: block_id=%s, date=%s, whole_day=%t",
		result.ID, result.Date, result.IsWholeDay)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Delete DELETE /api/v1/admin/blocked-slots/{blockId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "blockId")
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-slots/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/blocked-slots/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots/{id} - Blocked slot deleted: block_id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, blackouts.ErrBlockedSlotNotFound):
		h.logger.Warn("%s - Blocked slot not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, blackouts.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
