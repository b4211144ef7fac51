package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/service/settings"
	"github.com/m04kA/salon-booking/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	booking models.BookingSettingsResponse
	err     error
}

func (s *stubService) GetBooking(context.Context) (*models.BookingSettingsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := s.booking
	return &b, nil
}

func (s *stubService) UpdateBooking(_ context.Context, req *models.UpdateBookingSettingsRequest) (*models.BookingSettingsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if req.SameDayPolicy != nil {
		s.booking.SameDayPolicy = *req.SameDayPolicy
	}
	if req.MaxMonthsAhead != nil {
		s.booking.MaxMonthsAhead = *req.MaxMonthsAhead
	}
	b := s.booking
	return &b, nil
}

func (s *stubService) GetCustomization(context.Context) (*models.CustomizationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CustomizationResponse{BusinessName: "Salón"}, nil
}

func (s *stubService) UpdateCustomization(_ context.Context, req *models.UpdateCustomizationRequest) (*models.CustomizationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CustomizationResponse{BusinessName: *req.BusinessName}, nil
}

func TestHandler_Booking(t *testing.T) {
	svc := &stubService{booking: models.BookingSettingsResponse{SameDayPolicy: "same_day", MaxMonthsAhead: 3}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.UpdateBooking(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/booking-settings", strings.NewReader(`{"sameDayPolicy":"next_week"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetBooking(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booking-settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.BookingSettingsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "next_week", got.SameDayPolicy)
	assert.Equal(t, 3, got.MaxMonthsAhead)
}

func TestHandler_Errors(t *testing.T) {
	invalid := &stubService{err: settings.ErrInvalidInput}
	failing := &stubService{err: errors.New("db down")}

	tests := []struct {
		name       string
		call       func(h *Handler, w http.ResponseWriter)
		wantStatus int
	}{
		{
			name: "invalid booking",
			call: func(h *Handler, w http.ResponseWriter) {
				h.UpdateBooking(w, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"maxMonthsAhead":24}`)))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid customization",
			call: func(h *Handler, w http.ResponseWriter) {
				h.UpdateCustomization(w, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"primaryColor":"red"}`)))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown field",
			call: func(h *Handler, w http.ResponseWriter) {
				h.UpdateCustomization(w, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"logo":"x"}`)))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(NewHandler(invalid, nopLogger{}), rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	NewHandler(failing, nopLogger{}).GetCustomization(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
