package hours

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	hourRepo "github.com/m04kA/salon-booking/internal/infra/storage/businesshour"
	"github.com/m04kA/salon-booking/internal/service/hours/models"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type fakeRepo struct {
	hours []*domain.BusinessHour
}

func (r *fakeRepo) Create(_ context.Context, h *domain.BusinessHour) (*domain.BusinessHour, error) {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	r.hours = append(r.hours, h)
	return h, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BusinessHour, error) {
	for _, h := range r.hours {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, hourRepo.ErrBusinessHourNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]*domain.BusinessHour, error) {
	return r.hours, nil
}

func (r *fakeRepo) ListByDay(_ context.Context, day int) ([]*domain.BusinessHour, error) {
	var out []*domain.BusinessHour
	for _, h := range r.hours {
		if h.DayOfWeek == day {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, h *domain.BusinessHour) (*domain.BusinessHour, error) {
	for i, existing := range r.hours {
		if existing.ID == h.ID {
			r.hours[i] = h
			return h, nil
		}
	}
	return nil, hourRepo.ErrBusinessHourNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, h := range r.hours {
		if h.ID == id {
			r.hours = append(r.hours[:i], r.hours[i+1:]...)
			return nil
		}
	}
	return hourRepo.ErrBusinessHourNotFound
}

func seeded() (*fakeRepo, *domain.BusinessHour) {
	morning := &domain.BusinessHour{ID: uuid.New(), DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00"}
	return &fakeRepo{hours: []*domain.BusinessHour{morning}}, morning
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.BusinessHourRequest
		wantErr error
	}{
		{name: "afternoon block", req: models.BusinessHourRequest{DayOfWeek: 0, StartTime: "16:00", EndTime: "20:00"}},
		{name: "adjacent block", req: models.BusinessHourRequest{DayOfWeek: 0, StartTime: "13:00", EndTime: "14:00"}},
		{name: "other day same times", req: models.BusinessHourRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00"}},
		{name: "day out of range", req: models.BusinessHourRequest{DayOfWeek: 7, StartTime: "09:00", EndTime: "13:00"}, wantErr: ErrInvalidInput},
		{name: "start equals end", req: models.BusinessHourRequest{DayOfWeek: 2, StartTime: "09:00", EndTime: "09:00"}, wantErr: ErrInvalidInput},
		{name: "start after end", req: models.BusinessHourRequest{DayOfWeek: 2, StartTime: "18:00", EndTime: "09:00"}, wantErr: ErrInvalidInput},
		{name: "bad time", req: models.BusinessHourRequest{DayOfWeek: 2, StartTime: "9am", EndTime: "13:00"}, wantErr: ErrInvalidInput},
		{name: "overlapping block", req: models.BusinessHourRequest{DayOfWeek: 0, StartTime: "12:00", EndTime: "15:00"}, wantErr: ErrOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := seeded()
			svc := NewService(repo, logger.NewNop())

			got, err := svc.Create(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.StartTime, got.StartTime)
			assert.Equal(t, domain.DayNames[tt.req.DayOfWeek], got.DayName)
		})
	}
}

func TestService_Update_IgnoresItself(t *testing.T) {
	repo, morning := seeded()
	svc := NewService(repo, logger.NewNop())

	got, err := svc.Update(context.Background(), morning.ID, &models.BusinessHourRequest{
		DayOfWeek: 0,
		StartTime: "08:00",
		EndTime:   "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "08:00", got.StartTime)
}

func TestService_Update_NotFound(t *testing.T) {
	repo, _ := seeded()
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Update(context.Background(), uuid.New(), &models.BusinessHourRequest{
		DayOfWeek: 3,
		StartTime: "08:00",
		EndTime:   "12:00",
	})

	assert.ErrorIs(t, err, ErrBusinessHourNotFound)
}

func TestService_Delete(t *testing.T) {
	repo, morning := seeded()
	svc := NewService(repo, logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), morning.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), morning.ID), ErrBusinessHourNotFound)
}
