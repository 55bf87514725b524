package store

import (
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories which store sentinel, if any, a driver error
// stands for.
type ErrorClassification int

const (
	// Unclassified is the default for errors that map to no sentinel.
	// They propagate wrapped.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks an insert that collided with a unique key.
	UniqueViolation

	// ForeignKeyViolation marks a write referencing a missing parent row.
	ForeignKeyViolation

	// Unavailable marks connection loss or a backend refusing connections.
	Unavailable
)

// ErrorClassificator maps dialect-specific driver errors onto
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError by its SQLSTATE code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - 23505 unique_violation       → UniqueViolation
//   - 23503 foreign_key_violation  → ForeignKeyViolation
//   - class 08, 57P01..57P03       → Unavailable
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return Unavailable

	// Class 57: operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Unavailable
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result codes.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Unavailable
	}

	return Unclassified
}

// MySQL server error numbers.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html.
const (
	mysqlErrDupEntry         = 1062
	mysqlErrNoReferencedRow  = 1216
	mysqlErrNoReferencedRow2 = 1452
)

// MySQLErrorClassifier implements [ErrorClassificator] for go-sql-driver/mysql.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the server error number.
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return Unavailable
	}

	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return Unclassified
	}

	switch myErr.Number {
	case mysqlErrDupEntry:
		return UniqueViolation
	case mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2:
		return ForeignKeyViolation
	}

	return Unclassified
}
