package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/pgerr"
	"github.com/m04kA/salon-booking/pkg/psqlbuilder"
)

// Колонки записи вместе с данными услуги (LEFT JOIN: услуга могла быть удалена)
var appointmentColumns = []string{
	"a.id",
	"a.service_id",
	"a.name",
	"a.phone",
	"a.date",
	"a.time",
	"a.status",
	"a.created_at",
	"s.name",
	"s.duration_minutes",
	"s.price",
}

const (
	appointmentsTable = "appointments a"
	servicesJoin      = "services s ON s.id = a.service_id"
)

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись.
// Уникальный индекс на (date, time) для принятых записей превращается в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("service_id", "name", "phone", "date", "time", "status").
		Values(
			appointment.ServiceID,
			appointment.Name,
			appointment.Phone,
			appointment.Date.Format(domain.DateFormat),
			appointment.Time,
			appointment.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return appointment, nil
}

// GetByID получает запись по ID вместе с услугой
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(appointmentsTable).
		LeftJoin(servicesJoin).
		Where(squirrel.Eq{"a.id": id})

	// Внутри транзакции блокируем строку записи, чтобы смена статуса была атомарной
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List возвращает записи по фильтру, упорядоченные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(appointmentsTable).
		LeftJoin(servicesJoin)

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": statuses})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"a.date": filter.DateTo.Format(domain.DateFormat)})
	}
	if filter.Phone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.phone": *filter.Phone})
	}

	selectBuilder = selectBuilder.OrderBy("a.date ASC", "a.time ASC")
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "List", query, args)
}

// ListOccupying возвращает записи на дату с указанными статусами.
// В транзакции строки блокируются (FOR UPDATE), чтобы параллельное создание записи
// на то же время ждало завершения текущей проверки.
func (r *Repository) ListOccupying(ctx context.Context, date time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(appointmentsTable).
		LeftJoin(servicesJoin).
		Where(squirrel.Eq{"a.date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"a.status": statusStrings}).
		OrderBy("a.time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListOccupying", query, args)
}

// UpdateStatus меняет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Stats считает записи по статусам и принятые записи на дату today
func (r *Repository) Stats(ctx context.Context, today time.Time) (*domain.AppointmentStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'accepted')",
		"COUNT(*) FILTER (WHERE status = 'rejected')",
		"COUNT(*)",
	).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = 'accepted' AND date = ?)", today.Format(domain.DateFormat))).
		From("appointments").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.AppointmentStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Pending,
		&stats.Accepted,
		&stats.Rejected,
		&stats.Total,
		&stats.AcceptedToday,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - scan counters: %v", ErrScanRow, err)
	}

	return &stats, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Appointment, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: %s - %v", ErrSerialization, op, err)
		}
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s - %v", ErrSlotTaken, op, err)
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s - %v", ErrServiceNotFound, op, err)
	case pgerr.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s - %v", ErrSerialization, op, err)
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment  domain.Appointment
		serviceID    uuid.NullUUID
		serviceName  sql.NullString
		serviceDur   sql.NullInt64
		servicePrice sql.NullFloat64
	)

	err := row.Scan(
		&appointment.ID,
		&serviceID,
		&appointment.Name,
		&appointment.Phone,
		&appointment.Date,
		&appointment.Time,
		&appointment.Status,
		&appointment.CreatedAt,
		&serviceName,
		&serviceDur,
		&servicePrice,
	)
	if err != nil {
		return nil, err
	}

	if serviceID.Valid {
		appointment.ServiceID = serviceID.UUID
	}
	if serviceName.Valid {
		appointment.Service = &domain.AppointmentService{
			Name:            serviceName.String,
			DurationMinutes: int(serviceDur.Int64),
		}
		if servicePrice.Valid {
			appointment.Service.Price = &servicePrice.Float64
		}
	}

	return &appointment, nil
}
