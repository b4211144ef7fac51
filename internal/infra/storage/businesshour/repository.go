package businesshour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

var hourColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блок рабочих часов
func (r *Repository) Create(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("day_of_week", "start_time", "end_time").
		Values(hour.DayOfWeek, hour.StartTime, hour.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hour.ID, &hour.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return hour, nil
}

// GetByID получает блок по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hourColumns...).
		From("business_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var hour domain.BusinessHour
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hour.ID,
		&hour.DayOfWeek,
		&hour.StartTime,
		&hour.EndTime,
		&hour.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business hour: %v", ErrScanRow, err)
	}

	return &hour, nil
}

// List возвращает все блоки, упорядоченные по дню недели и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.BusinessHour, error) {
	return r.list(ctx, "List", nil)
}

// ListByDay возвращает блоки одного дня недели (0 = понедельник)
func (r *Repository) ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHour, error) {
	return r.list(ctx, "ListByDay", squirrel.Eq{"day_of_week": dayOfWeek})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hourColumns...).From("business_hours")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.OrderBy("day_of_week ASC", "start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHour, 0)
	for rows.Next() {
		var hour domain.BusinessHour
		if err := rows.Scan(&hour.ID, &hour.DayOfWeek, &hour.StartTime, &hour.EndTime, &hour.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		hours = append(hours, &hour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return hours, nil
}

// Update перезаписывает день и время блока
func (r *Repository) Update(ctx context.Context, hour *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_hours").
		Set("day_of_week", hour.DayOfWeek).
		Set("start_time", hour.StartTime).
		Set("end_time", hour.EndTime).
		Where(squirrel.Eq{"id": hour.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&hour.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return hour, nil
}

// Delete удаляет блок рабочих часов
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusinessHourNotFound
	}

	return nil
}

// Count количество блоков рабочих часов
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("business_hours").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
