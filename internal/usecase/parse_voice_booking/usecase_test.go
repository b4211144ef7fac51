package parse_voice_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type fakeServices struct {
	services []*domain.Service
	err      error
}

func (f fakeServices) List(context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newUseCase(repo ServiceRepository) *UseCase {
	uc := NewUseCase(repo, time.UTC, logger.NewNop())
	// 2025-04-14, Monday
	uc.timeProvider = fixedClock(time.Date(2025, 4, 14, 11, 0, 0, 0, time.UTC))
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	manicura := &domain.Service{ID: uuid.New(), Name: "Manicura"}
	uc := newUseCase(fakeServices{services: []*domain.Service{manicura}})

	resp, err := uc.Execute(context.Background(), &Request{Text: " Agendar a María el jueves a las 4 de la tarde para manicura "})

	require.NoError(t, err)
	assert.Equal(t, "María", resp.Name)
	require.NotNil(t, resp.Date)
	assert.Equal(t, "2025-04-17", resp.Date.Format(domain.DateFormat))
	require.NotNil(t, resp.Time)
	assert.Equal(t, "16:00", resp.Time.String())
	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, manicura.ID, *resp.ServiceID)
	assert.Equal(t, "Manicura", resp.ServiceName)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    fakeServices
		text    string
		wantErr error
	}{
		{name: "empty", text: "   ", wantErr: ErrInvalidInput},
		{name: "too long", text: strings.Repeat("a", MaxTextLength+1), wantErr: ErrInvalidInput},
		{name: "nothing recognized", text: "hola buenas", wantErr: ErrNothingRecognized},
		{name: "repository error", repo: fakeServices{err: assert.AnError}, text: "mañana", wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.repo)

			_, err := uc.Execute(context.Background(), &Request{Text: tt.text})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
