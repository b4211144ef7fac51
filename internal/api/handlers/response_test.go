package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "servicio no encontrado")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: 404, Message: "servicio no encontrado"}, body)
}

func TestRespondInternalError_HidesCause(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Ana"}`},
		{name: "unknown field", body: `{"name":"Ana","extra":1}`, wantErr: true},
		{name: "two objects", body: `{"name":"Ana"}{"name":"Eva"}`, wantErr: true},
		{name: "broken", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload

			err := DecodeJSON(r, &p)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", p.Name)
		})
	}
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"serviceId": id.String()})

	got, err := PathUUID(r, "serviceId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = PathUUID(r, "hourId")
	assert.Error(t, err)

	bad := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"serviceId": "42"})
	_, err = PathUUID(bad, "serviceId")
	assert.Error(t, err)
}

func TestQueryDate(t *testing.T) {
	got, err := QueryDate(httptest.NewRequest(http.MethodGet, "/?dateFrom=2025-04-21", nil), "dateFrom")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 21, got.Day())

	got, err = QueryDate(httptest.NewRequest(http.MethodGet, "/", nil), "dateFrom")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = QueryDate(httptest.NewRequest(http.MethodGet, "/?dateFrom=ayer", nil), "dateFrom")
	assert.Error(t, err)
}
