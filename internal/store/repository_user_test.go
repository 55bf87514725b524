package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/logger"
)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewDB(conn, dialect, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T, dialect Dialect) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, dialect)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─── Register ────────────────────────────────────────────────────────────────

func TestRegister_PostgresReturning(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO users \(username,password\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user, err := repo.Register(context.Background(), "alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_MySQLLastInsertID(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectMySQL)

	mock.ExpectExec(`INSERT INTO users \(username,password\) VALUES \(\?,\?\)`).
		WithArgs("alice", "hash").
		WillReturnResult(sqlmock.NewResult(3, 1))

	user, err := repo.Register(context.Background(), "alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Register(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestRegister_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Register(context.Background(), "alice", "hash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}

func TestRegister_Unavailable(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.Register(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

// ─── FindUserByUsername ──────────────────────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery(`SELECT id, username, password FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "hash"))

	user, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByUsername_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── DeleteUser ──────────────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing user", result: sqlmock.NewResult(0, 0), wantErr: ErrNoUserWasFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, DialectPostgres)

			exp := mock.ExpectExec(`DELETE FROM users WHERE username = \$1`).WithArgs("alice")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteUser(context.Background(), "alice")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
