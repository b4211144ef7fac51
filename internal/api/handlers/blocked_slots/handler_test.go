package blocked_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/service/blackouts"
	"github.com/m04kA/salon-booking/internal/service/blackouts/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	listReq *models.ListBlockedSlotsRequest
	err     error
}

func (s *stubService) List(_ context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	s.listReq = req
	return &models.BlockedSlotListResponse{BlockedSlots: []models.BlockedSlotResponse{}}, s.err
}

func (s *stubService) Create(_ context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BlockedSlotResponse{ID: uuid.NewString(), Date: req.Date, IsWholeDay: req.StartTime == nil}, nil
}

func (s *stubService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func serve(svc BlackoutsService, method, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/blocked-slots", h.List).Methods(http.MethodGet)
	r.HandleFunc("/admin/blocked-slots", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/blocked-slots/{blockId}", h.Delete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestHandler_List_DateFilter(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, http.MethodGet, "/admin/blocked-slots?dateFrom=2025-04-01&dateTo=2025-04-30", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listReq)
	require.NotNil(t, svc.listReq.DateFrom)
	require.NotNil(t, svc.listReq.DateTo)
	assert.Equal(t, 30, svc.listReq.DateTo.Day())

	rec = serve(&stubService{}, http.MethodGet, "/admin/blocked-slots?dateFrom=abril", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateAndDelete(t *testing.T) {
	tests := []struct {
		name       string
		svc        *stubService
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "whole day", svc: &stubService{}, method: http.MethodPost, path: "/admin/blocked-slots", body: `{"date":"2025-04-18","reason":"Viernes Santo"}`, wantStatus: http.StatusCreated},
		{name: "invalid", svc: &stubService{err: blackouts.ErrInvalidInput}, method: http.MethodPost, path: "/admin/blocked-slots", body: `{"date":"2025-04-18","startTime":"12:00"}`, wantStatus: http.StatusBadRequest},
		{name: "delete", svc: &stubService{}, method: http.MethodDelete, path: "/admin/blocked-slots/" + uuid.NewString(), wantStatus: http.StatusNoContent},
		{name: "delete missing", svc: &stubService{err: blackouts.ErrBlockedSlotNotFound}, method: http.MethodDelete, path: "/admin/blocked-slots/" + uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "delete bad id", svc: &stubService{}, method: http.MethodDelete, path: "/admin/blocked-slots/x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(tt.svc, tt.method, tt.path, tt.body).Code)
		})
	}
}
