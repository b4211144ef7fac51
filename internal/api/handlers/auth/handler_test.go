package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/api/middleware"
	"github.com/m04kA/salon-booking/internal/service/auth"
	"github.com/m04kA/salon-booking/internal/service/auth/models"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err       error
	loggedOut *jwtauth.Claims
}

func (s *stubService) Login(_ context.Context, req *models.CredentialsRequest) (*models.LoginResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.LoginResponse{
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      models.AdminResponse{ID: uuid.NewString(), Username: req.NormalizedUsername(), Confirmed: true},
	}, nil
}

func (s *stubService) Register(_ context.Context, req *models.CredentialsRequest) (*models.AdminResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.AdminResponse{ID: uuid.NewString(), Username: req.NormalizedUsername()}, nil
}

func (s *stubService) Logout(_ context.Context, claims *jwtauth.Claims) error {
	s.loggedOut = claims
	return s.err
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		body       string
		wantStatus int
	}{
		{name: "ok", body: `{"username":"ana","password":"secreto"}`, wantStatus: http.StatusOK},
		{name: "wrong password", err: auth.ErrInvalidCredentials, body: `{"username":"ana","password":"x"}`, wantStatus: http.StatusUnauthorized},
		{name: "not confirmed", err: auth.ErrAccountNotConfirmed, body: `{"username":"ana","password":"secreto"}`, wantStatus: http.StatusForbidden},
		{name: "bad body", body: `{"user":"ana"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, nopLogger{}).Login(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "taken", err: auth.ErrUsernameTaken, wantStatus: http.StatusConflict},
		{name: "short password", err: auth.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, nopLogger{}).Register(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"username":"ana","password":"secreto"}`)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	svc := &stubService{}
	claims := &jwtauth.Claims{Username: "ana", RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil)
	req = req.WithContext(middleware.WithAdmin(req.Context(), claims))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.loggedOut)
	assert.Equal(t, "jti-1", svc.loggedOut.ID)
}

func TestHandler_Logout_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&stubService{}, nopLogger{}).Logout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
