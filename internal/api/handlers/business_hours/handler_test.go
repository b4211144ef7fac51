package business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/salon-booking/internal/service/hours"
	"github.com/m04kA/salon-booking/internal/service/hours/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err error
}

func (s stubService) List(context.Context) (*models.BusinessHourListResponse, error) {
	return &models.BusinessHourListResponse{BusinessHours: []models.BusinessHourResponse{}}, s.err
}

func (s stubService) Create(_ context.Context, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BusinessHourResponse{ID: uuid.NewString(), DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (s stubService) Update(_ context.Context, id uuid.UUID, req *models.BusinessHourRequest) (*models.BusinessHourResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BusinessHourResponse{ID: id.String(), DayOfWeek: req.DayOfWeek}, nil
}

func (s stubService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func serve(svc HoursService, method, path, body string) int {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/business-hours", h.List).Methods(http.MethodGet)
	r.HandleFunc("/admin/business-hours", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/business-hours/{hourId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/business-hours/{hourId}", h.Delete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec.Code
}

func TestHandler(t *testing.T) {
	validBody := `{"dayOfWeek":0,"startTime":"09:00","endTime":"14:00"}`
	id := uuid.NewString()

	tests := []struct {
		name       string
		svc        stubService
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "list", method: http.MethodGet, path: "/admin/business-hours", wantStatus: http.StatusOK},
		{name: "create", method: http.MethodPost, path: "/admin/business-hours", body: validBody, wantStatus: http.StatusCreated},
		{name: "create overlap", svc: stubService{err: hours.ErrOverlap}, method: http.MethodPost, path: "/admin/business-hours", body: validBody, wantStatus: http.StatusConflict},
		{name: "create invalid", svc: stubService{err: hours.ErrInvalidInput}, method: http.MethodPost, path: "/admin/business-hours", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "create bad json", method: http.MethodPost, path: "/admin/business-hours", body: `{"dayOfWeek":"lunes"}`, wantStatus: http.StatusBadRequest},
		{name: "update", method: http.MethodPut, path: "/admin/business-hours/" + id, body: validBody, wantStatus: http.StatusOK},
		{name: "update bad id", method: http.MethodPut, path: "/admin/business-hours/1", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "delete", method: http.MethodDelete, path: "/admin/business-hours/" + id, wantStatus: http.StatusNoContent},
		{name: "delete missing", svc: stubService{err: hours.ErrBusinessHourNotFound}, method: http.MethodDelete, path: "/admin/business-hours/" + id, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(tt.svc, tt.method, tt.path, tt.body))
		})
	}
}
