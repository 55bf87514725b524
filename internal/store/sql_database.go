package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/migrations"
)

// Dialect names the SQL backend behind a [DB]. Its value doubles as the
// migrations directory name.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
	DialectMySQL    Dialect = migrations.DialectMySQL
)

// placeholder returns the bind-variable style of the dialect.
func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// returning reports whether INSERT ... RETURNING is used to read the new id.
// The other dialects go through sql.Result.LastInsertId.
func (d Dialect) returning() bool {
	return d == DialectPostgres
}

// DB is a connection pool bound to one dialect together with the classifier
// that turns driver errors into store sentinels.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an opened pool. The classifier is picked from the dialect.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	var classifier ErrorClassificator
	switch dialect {
	case DialectPostgres:
		classifier = NewPostgresErrorClassifier()
	case DialectSQLite:
		classifier = NewSQLiteErrorClassifier()
	case DialectMySQL:
		classifier = NewMySQLErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the SQL backend of the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema for the dialect of db.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, string(db.dialect), db.logger); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("schema is up to date")
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// wrapDriverError attaches [ErrStoreUnavailable] to connectivity failures so
// callers can tell them apart from query bugs.
func (db *DB) wrapDriverError(sentinel, err error) error {
	if db.classify(err) == Unavailable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
