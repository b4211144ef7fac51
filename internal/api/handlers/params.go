package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/domain"
)

// PathUUID читает UUID из переменной маршрута mux
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("missing path variable %s", name)
	}
	return uuid.Parse(raw)
}

// QueryDate читает необязательную дату YYYY-MM-DD из query параметров.
// Пустой параметр дает nil без ошибки.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &date, nil
}
