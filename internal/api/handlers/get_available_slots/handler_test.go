package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/salon-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()
	date := time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)

	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		ServiceID:       serviceID,
		DurationMinutes: 30,
		Slots: []getAvailableSlots.Slot{
			{StartTime: types.MustTimeString("09:00"), Available: true},
			{StartTime: types.MustTimeString("09:15"), Available: false},
		},
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?serviceId="+serviceID.String()+"&date=2025-04-21", nil)
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, serviceID, uc.got.ServiceID)
	assert.True(t, uc.got.Date.Equal(date))

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-04-21", body.Date)
	assert.Equal(t, []AvailableSlot{{Time: "09:00", Available: true}, {Time: "09:15", Available: false}}, body.Slots)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing service", query: "?date=2025-04-21"},
		{name: "invalid service", query: "?serviceId=abc&date=2025-04-21"},
		{name: "missing date", query: "?serviceId=" + uuid.NewString()},
		{name: "invalid date", query: "?serviceId=" + uuid.NewString() + "&date=21/04/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec := httptest.NewRecorder()

			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("db down")}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/available-slots?serviceId="+uuid.NewString()+"&date=2025-04-21", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
