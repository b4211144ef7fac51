package parse_voice_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parseVoiceBooking "github.com/m04kA/salon-booking/internal/usecase/parse_voice_booking"
	"github.com/m04kA/salon-booking/pkg/ptr"
	"github.com/m04kA/salon-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *parseVoiceBooking.Response
	err  error
}

func (s stubUseCase) Execute(context.Context, *parseVoiceBooking.Request) (*parseVoiceBooking.Response, error) {
	return s.resp, s.err
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()
	uc := stubUseCase{resp: &parseVoiceBooking.Response{
		Transcript:  "Agendar a María el jueves a las 4 de la tarde para manicura",
		Name:        "María",
		Date:        ptr.Ptr(time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)),
		Time:        ptr.Ptr(types.MustTimeString("16:00")),
		ServiceID:   &serviceID,
		ServiceName: "Manicura",
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/voice/parse",
		strings.NewReader(`{"text":"Agendar a María el jueves a las 4 de la tarde para manicura"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body DraftResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Name)
	assert.Equal(t, "María", *body.Name)
	assert.Nil(t, body.Phone)
	require.NotNil(t, body.Date)
	assert.Equal(t, "2025-04-17", *body.Date)
	require.NotNil(t, body.Time)
	assert.Equal(t, "16:00", *body.Time)
	require.NotNil(t, body.ServiceID)
	assert.Equal(t, serviceID.String(), *body.ServiceID)
}

func TestHandler_Handle_NothingRecognized(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubUseCase{err: parseVoiceBooking.ErrNothingRecognized}, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/admin/voice/parse", strings.NewReader(`{"text":"hola"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Handle_InvalidInput(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubUseCase{err: parseVoiceBooking.ErrInvalidInput}, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/admin/voice/parse", strings.NewReader(`{"text":""}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
