package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
	"github.com/m04kA/salon-booking/pkg/types"
)

var blockColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий блокировок расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку. Без времени блокируется весь день.
func (r *Repository) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("date", "start_time", "end_time", "reason").
		Values(block.Date.Format(domain.DateFormat), block.StartTime, block.EndTime, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// ListByDate возвращает блокировки на конкретную дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	return r.list(ctx, "ListByDate", domain.BlockedSlotsFilter{DateFrom: &date, DateTo: &date})
}

// List возвращает блокировки в диапазоне дат (границы включительно), упорядоченные по дате
func (r *Repository) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	return r.list(ctx, "List", filter)
}

func (r *Repository) list(ctx context.Context, name string, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).From("blocked_slots")
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": filter.DateTo.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.OrderBy("date ASC", "start_time ASC NULLS FIRST").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, name, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, name, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, name, err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, name, err)
	}

	return blocks, nil
}

// Delete снимает блокировку
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
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
		return ErrBlockedSlotNotFound
	}

	return nil
}

func scanBlock(rows *sql.Rows) (*domain.BlockedSlot, error) {
	var (
		block      domain.BlockedSlot
		start, end types.TimeString
		reason     sql.NullString
	)

	if err := rows.Scan(&block.ID, &block.Date, &start, &end, &reason, &block.CreatedAt); err != nil {
		return nil, err
	}

	if !start.IsZero() {
		block.StartTime = &start
	}
	if !end.IsZero() {
		block.EndTime = &end
	}
	if reason.Valid {
		block.Reason = &reason.String
	}

	return &block, nil
}
