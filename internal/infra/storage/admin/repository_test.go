package admin

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
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

	mock.ExpectQuery("INSERT INTO admin_users \\(username,password_hash,confirmed\\)").
		WithArgs("laura", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), time.Now()))

	got, err := repo.Create(context.Background(), &domain.AdminUser{Username: "laura", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO admin_users").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.AdminUser{Username: "laura", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, username, password_hash, confirmed, created_at FROM admin_users WHERE username = \\$1").
		WithArgs("laura").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "confirmed", "created_at"}).
			AddRow(id.String(), "laura", "hash", true, time.Now()))

	got, err := repo.GetByUsername(context.Background(), "laura")

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.Confirmed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM admin_users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "confirmed", "created_at"}))

	_, err := repo.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrAdminNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
