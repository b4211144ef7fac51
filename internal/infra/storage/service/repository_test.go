package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO services \\(name,duration_minutes,price\\)").
		WithArgs("Corte de pelo", 30, 15.5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), created))

	got, err := repo.Create(context.Background(), &domain.Service{
		Name:            "Corte de pelo",
		DurationMinutes: 30,
		Price:           ptr.Ptr(15.5),
	})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM services WHERE id = \\$1").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM services ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(uuid.New().String(), "Manicura", 45, nil, now).
			AddRow(uuid.New().String(), "Corte", 30, []byte("12.50"), now))

	services, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Nil(t, services[0].Price)
	require.NotNil(t, services[1].Price)
	assert.Equal(t, 12.5, *services[1].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM services").WillReturnError(assert.AnError)

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM services WHERE id = \\$1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM services").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
