package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	settingsRepo "github.com/m04kA/salon-booking/internal/infra/storage/settings"
	"github.com/m04kA/salon-booking/internal/service/settings/models"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/ptr"
)

type fakeRepo struct {
	booking       *domain.BookingSettings
	customization *domain.CustomizationSettings
	err           error
}

func (r *fakeRepo) GetBooking(_ context.Context) (*domain.BookingSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.booking == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *fakeRepo) UpsertBooking(_ context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error) {
	s.UpdatedAt = time.Now()
	r.booking = s
	return s, nil
}

func (r *fakeRepo) GetCustomization(_ context.Context) (*domain.CustomizationSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.customization == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *r.customization
	return &copied, nil
}

func (r *fakeRepo) UpsertCustomization(_ context.Context, c *domain.CustomizationSettings) (*domain.CustomizationSettings, error) {
	c.UpdatedAt = time.Now()
	r.customization = c
	return c, nil
}

func TestService_GetBooking_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.NewNop())

	got, err := svc.GetBooking(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "same_day", got.SameDayPolicy)
	assert.Equal(t, 3, got.MaxMonthsAhead)
	assert.Nil(t, got.UpdatedAt)
}

func TestService_GetBooking_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: settingsRepo.ErrExecQuery}, logger.NewNop())

	_, err := svc.GetBooking(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateBooking(t *testing.T) {
	tests := []struct {
		name       string
		req        models.UpdateBookingSettingsRequest
		wantErr    error
		wantPolicy string
		wantMonths int
	}{
		{name: "policy only", req: models.UpdateBookingSettingsRequest{SameDayPolicy: ptr.Ptr("next_week")}, wantPolicy: "next_week", wantMonths: 3},
		{name: "months only", req: models.UpdateBookingSettingsRequest{MaxMonthsAhead: ptr.Ptr(12)}, wantPolicy: "same_day", wantMonths: 12},
		{name: "unknown policy", req: models.UpdateBookingSettingsRequest{SameDayPolicy: ptr.Ptr("tomorrow")}, wantErr: ErrInvalidInput},
		{name: "zero months", req: models.UpdateBookingSettingsRequest{MaxMonthsAhead: ptr.Ptr(0)}, wantErr: ErrInvalidInput},
		{name: "too many months", req: models.UpdateBookingSettingsRequest{MaxMonthsAhead: ptr.Ptr(13)}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, logger.NewNop())

			got, err := svc.UpdateBooking(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.booking)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPolicy, got.SameDayPolicy)
			assert.Equal(t, tt.wantMonths, got.MaxMonthsAhead)
			assert.NotNil(t, got.UpdatedAt)
		})
	}
}

func TestService_GetCustomization_Defaults(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.NewNop())

	got, err := svc.GetCustomization(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Mi Negocio", got.BusinessName)
	assert.Nil(t, got.HeroImageURL)
}

func TestService_UpdateCustomization(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())

	got, err := svc.UpdateCustomization(context.Background(), &models.UpdateCustomizationRequest{
		BusinessName: ptr.Ptr("  Peluquería Sol "),
		PrimaryColor: ptr.Ptr("#ff8800"),
		HeroImageURL: ptr.Ptr("https://example.com/hero.jpg"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Peluquería Sol", got.BusinessName)
	assert.Equal(t, "#FF8800", got.PrimaryColor)
	assert.Equal(t, "Reserva tu cita", got.WelcomeTitle)
	require.NotNil(t, got.HeroImageURL)

	got, err = svc.UpdateCustomization(context.Background(), &models.UpdateCustomizationRequest{HeroImageURL: ptr.Ptr("")})
	require.NoError(t, err)
	assert.Nil(t, got.HeroImageURL)
	assert.Equal(t, "Peluquería Sol", got.BusinessName)
}

func TestService_UpdateCustomization_InvalidColor(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.UpdateCustomization(context.Background(), &models.UpdateCustomizationRequest{
		WelcomeTitleColor: ptr.Ptr("red"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.customization)
}
