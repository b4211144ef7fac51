package auth

import (
	"errors"
	"net/http"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/api/middleware"
	"github.com/m04kA/salon-booking/internal/service/auth"
	"github.com/m04kA/salon-booking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud no válido"
	msgInvalidCredentials  = "usuario o contraseña incorrectos"
	msgAccountNotConfirmed = "la cuenta aún no ha sido confirmada"
	msgUsernameTaken       = "el nombre de usuario ya está registrado"
	msgInvalidRegistration = "usuario de 3 a 64 caracteres y contraseña demasiado corta"
	msgNotAuthenticated    = "sesión no válida"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.NormalizedUsername())
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrAccountNotConfirmed):
			h.logger.Warn("POST /auth/login - Account not confirmed: username=%s", req.NormalizedUsername())
			handlers.RespondForbidden(w, msgAccountNotConfirmed)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Admin signed in: admin_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Register POST /api/v1/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			h.logger.Warn("POST /auth/register - Username taken: username=%s", req.NormalizedUsername())
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRegistration)

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Admin registered: admin_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Logout POST /api/v1/admin/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/auth/logout - No admin in context")
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			h.logger.Warn("POST /admin/auth/logout - Invalid token claims: %v", err)
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
			return
		}
		h.logger.Error("POST /admin/auth/logout - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/auth/logout - Admin signed out: username=%s", claims.Username)
	handlers.RespondNoContent(w)
}
