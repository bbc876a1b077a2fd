package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// newMockDB returns a postgres-flavoured DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	id := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(userColumns).AddRow(id.String(), "john@example.com", "hash", "ADMIN", now)

	mock.ExpectQuery(`SELECT id, email, password, role, created_at FROM users WHERE email = \$1`).
		WithArgs("john@example.com").
		WillReturnRows(rows)

	user, found, err := repo.FindByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	id := uuid.New()
	mock.ExpectQuery("SELECT .* FROM users WHERE id = \\$1").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserRepository_LockByID(t *testing.T) {
	id := uuid.New()
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(userColumns).AddRow(id.String(), "john@example.com", "hash", "USER", time.Now().UTC())
	}

	t.Run("postgres locks the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1 FOR UPDATE`).
			WithArgs(id.String()).
			WillReturnRows(row())

		user, found, err := repo.LockByID(context.Background(), id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, id, user.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlite reads plainly", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })
		repo := NewUserRepository(newDB(conn, config.DriverSQLite, logger.Nop()), logger.Nop())

		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?$`).
			WithArgs(id.String()).
			WillReturnRows(row())

		_, found, err := repo.LockByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, found)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM users").WillReturnError(errors.New("network error"))

	_, found, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.False(t, found)
}

func TestUserRepository_Save(t *testing.T) {
	user := models.User{
		ID:        uuid.New(),
		Email:     "john@example.com",
		Password:  "hash",
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec(`INSERT INTO users \(id,email,password,role,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
			WithArgs(user.ID.String(), user.Email, user.Password, "USER", user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := repo.Save(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, user, saved)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.Save(context.Background(), user)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("connection lost", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO users").WillReturnError(pgError(pgerrcode.ConnectionFailure))

		_, err := repo.Save(context.Background(), user)
		require.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestUserRepository_Update(t *testing.T) {
	id := uuid.New()

	t.Run("row vanished", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec(`UPDATE users SET password = \$1 WHERE id = \$2`).
			WithArgs("new-hash", id.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, found, err := repo.Update(context.Background(), models.User{ID: id, Password: "new-hash"})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE users SET password").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT .* FROM users WHERE id").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@b.c", "new-hash", "USER", time.Now()))

		user, found, err := repo.Update(context.Background(), models.User{ID: id, Password: "new-hash"})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "new-hash", user.Password)
	})
}
