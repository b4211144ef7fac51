package voiceparse

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

var (
	corte    = &domain.Service{ID: uuid.New(), Name: "Corte de pelo"}
	manicura = &domain.Service{ID: uuid.New(), Name: "Manicura"}
	unas     = &domain.Service{ID: uuid.New(), Name: "Uñas de gel"}
	masaje   = &domain.Service{ID: uuid.New(), Name: "Masaje relajante"}
	services = []*domain.Service{corte, manicura, unas, masaje}

	// 2025-04-14, Monday
	now = time.Date(2025, 4, 14, 11, 0, 0, 0, time.UTC)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_FullSentence(t *testing.T) {
	draft := Parse("Agendar a María el jueves a las 4 de la tarde para manicura", services, now)

	assert.Equal(t, "María", draft.Name)
	require.NotNil(t, draft.Date)
	assert.Equal(t, date(2025, 4, 17), *draft.Date)
	require.NotNil(t, draft.Time)
	assert.Equal(t, types.TimeString("16:00"), *draft.Time)
	require.NotNil(t, draft.ServiceID)
	assert.Equal(t, manicura.ID, *draft.ServiceID)
	assert.False(t, draft.Empty())
}

func TestParse_FullNamePhoneAndMorning(t *testing.T) {
	draft := Parse("Cita para Juan PÉREZ mañana a las 10:30 de la mañana, teléfono 600123456, corte de pelo", services, now)

	assert.Equal(t, "Juan Pérez", draft.Name)
	assert.Equal(t, "600123456", draft.Phone)
	require.NotNil(t, draft.Date)
	assert.Equal(t, date(2025, 4, 15), *draft.Date)
	require.NotNil(t, draft.Time)
	assert.Equal(t, types.TimeString("10:30"), *draft.Time)
	require.NotNil(t, draft.ServiceID)
	assert.Equal(t, corte.ID, *draft.ServiceID)
}

func TestParse_Dates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *time.Time
	}{
		{name: "tomorrow", text: "mañana", want: ptrTime(date(2025, 4, 15))},
		{name: "same weekday means next week", text: "el lunes", want: ptrTime(date(2025, 4, 21))},
		{name: "weekday with accent", text: "el miércoles", want: ptrTime(date(2025, 4, 16))},
		{name: "weekday without accent", text: "el sabado", want: ptrTime(date(2025, 4, 19))},
		{name: "month name", text: "el 20 de abril", want: ptrTime(date(2025, 4, 20))},
		{name: "passed date moves to next year", text: "el 3 de marzo", want: ptrTime(date(2026, 3, 3))},
		{name: "today stays this year", text: "el 14 de abril", want: ptrTime(date(2025, 4, 14))},
		{name: "slash", text: "el 2/5", want: ptrTime(date(2025, 5, 2))},
		{name: "impossible day", text: "el 31 de abril"},
		{name: "bad month", text: "el 2/13"},
		{name: "morning is not tomorrow", text: "a las 9 de la mañana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Parse(tt.text, nil, now)
			assert.Equal(t, tt.want, draft.Date)
		})
	}
}

func TestParse_Times(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "a las 4", want: "16:00"},
		{text: "a las 11:15", want: "23:15"},
		{text: "a las 12", want: "12:00"},
		{text: "a las 17:45", want: "17:45"},
		{text: "a las 9 de la mañana", want: "09:00"},
		{text: "a las 9 de la manana", want: "09:00"},
		{text: "a las 12 am", want: "00:00"},
		{text: "a las 8 pm", want: "20:00"},
		{text: "a las 7 de la noche", want: "19:00"},
		{text: "a las 5 y media", want: "17:30"},
		{text: "a la 1", want: "13:00"},
		{text: "a las 25"},
		{text: "a las 10:75 de la mañana"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			draft := Parse(tt.text, nil, now)
			if tt.want == "" {
				assert.Nil(t, draft.Time)
				return
			}
			require.NotNil(t, draft.Time)
			assert.Equal(t, tt.want, draft.Time.String())
		})
	}
}

func TestParse_ServiceKeywords(t *testing.T) {
	tests := []struct {
		text string
		want *domain.Service
	}{
		{text: "quiere cortarse el pelo", want: corte},
		{text: "para uñas de gel", want: unas},
		{text: "se quiere hacer las uñas", want: unas},
		{text: "un masaje", want: masaje},
		{text: "una cita", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			draft := Parse(tt.text, services, now)
			if tt.want == nil {
				assert.Nil(t, draft.ServiceID)
				return
			}
			require.NotNil(t, draft.ServiceID)
			assert.Equal(t, tt.want.ID, *draft.ServiceID)
		})
	}
}

func TestParse_PhoneNeedsStandaloneRun(t *testing.T) {
	assert.Equal(t, "", Parse("llamar al 12345", nil, now).Phone)
	assert.Equal(t, "", Parse("llamar al 123456789012", nil, now).Phone)
	assert.Equal(t, "6001234567", Parse("llamar al 6001234567", nil, now).Phone)
}

func TestParse_NothingRecognized(t *testing.T) {
	draft := Parse("hola buenas tardes, 600123456", services, now)

	assert.True(t, draft.Empty())
	assert.Equal(t, "600123456", draft.Phone)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
