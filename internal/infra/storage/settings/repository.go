package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

// Обе таблицы настроек хранят ровно одну строку с id = 1
const singletonID = 1

var customizationColumns = []string{
	"business_name",
	"welcome_title",
	"welcome_subtitle",
	"booking_instructions",
	"hero_image_url",
	"primary_color",
	"business_name_color",
	"welcome_title_color",
	"welcome_subtitle_color",
	"booking_instructions_color",
}

// Repository репозиторий настроек записи и оформления
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBooking получает настройки записи.
// Если строки нет, возвращает ErrSettingsNotFound.
func (r *Repository) GetBooking(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("same_day_policy", "max_months_ahead", "updated_at").
		From("booking_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.BookingSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.SameDayPolicy,
		&settings.MaxMonthsAhead,
		&settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - scan settings: %v", ErrScanRow, err)
	}

	return &settings, nil
}

// UpsertBooking создает или перезаписывает настройки записи
func (r *Repository) UpsertBooking(ctx context.Context, settings *domain.BookingSettings) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_settings").
		Columns("id", "same_day_policy", "max_months_ahead").
		Values(singletonID, settings.SameDayPolicy, settings.MaxMonthsAhead).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"same_day_policy = EXCLUDED.same_day_policy, " +
			"max_months_ahead = EXCLUDED.max_months_ahead, " +
			"updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&settings.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertBooking - execute upsert: %v", ErrExecQuery, err)
	}

	return settings, nil
}

// GetCustomization получает настройки оформления.
// Если строки нет, возвращает ErrSettingsNotFound.
func (r *Repository) GetCustomization(ctx context.Context) (*domain.CustomizationSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(customizationColumns, "updated_at")...).
		From("customization_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomization - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings domain.CustomizationSettings
		heroURL  sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.BusinessName,
		&settings.WelcomeTitle,
		&settings.WelcomeSubtitle,
		&settings.BookingInstructions,
		&heroURL,
		&settings.PrimaryColor,
		&settings.BusinessNameColor,
		&settings.WelcomeTitleColor,
		&settings.WelcomeSubtitleColor,
		&settings.BookingInstructionsColor,
		&settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomization - scan settings: %v", ErrScanRow, err)
	}
	if heroURL.Valid {
		settings.HeroImageURL = &heroURL.String
	}

	return &settings, nil
}

// UpsertCustomization создает или перезаписывает настройки оформления
func (r *Repository) UpsertCustomization(ctx context.Context, settings *domain.CustomizationSettings) (*domain.CustomizationSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	suffix := "ON CONFLICT (id) DO UPDATE SET "
	for _, column := range customizationColumns {
		suffix += column + " = EXCLUDED." + column + ", "
	}
	suffix += "updated_at = NOW() RETURNING updated_at"

	query, args, err := psqlbuilder.Insert("customization_settings").
		Columns(append([]string{"id"}, customizationColumns...)...).
		Values(
			singletonID,
			settings.BusinessName,
			settings.WelcomeTitle,
			settings.WelcomeSubtitle,
			settings.BookingInstructions,
			settings.HeroImageURL,
			settings.PrimaryColor,
			settings.BusinessNameColor,
			settings.WelcomeTitleColor,
			settings.WelcomeSubtitleColor,
			settings.BookingInstructionsColor,
		).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertCustomization - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&settings.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertCustomization - execute upsert: %v", ErrExecQuery, err)
	}

	return settings, nil
}
