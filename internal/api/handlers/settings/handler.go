package settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/service/settings"
	"github.com/m04kA/salon-booking/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidBooking     = "configuración no válida: política same_day, next_day o next_week y de 1 a 12 meses"
	msgInvalidCustom      = "personalización no válida: revise los textos y los colores (#RRGGBB)"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetBooking GET /api/v1/booking-settings
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBooking(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateBooking PUT /api/v1/admin/booking-settings
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBookingSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/booking-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBooking(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/booking-settings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)
			return
		}
		h.logger.Error("PUT /admin/booking-settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/booking-settings - Settings updated: policy=%s, months=%d", result.SameDayPolicy, result.MaxMonthsAhead)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetCustomization GET /api/v1/customization
func (h *Handler) GetCustomization(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCustomization(r.Context())
	if err != nil {
		h.logger.Error("GET /customization - Failed to get customization: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateCustomization PUT /api/v1/admin/customization
func (h *Handler) UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCustomizationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/customization - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCustomization(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/customization - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustom)
			return
		}
		h.logger.Error("PUT /admin/customization - Failed to update customization: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/customization - Customization updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
