// Package migrations embeds the schema of the diary database, one goose
// directory per SQL dialect, and applies it idempotently.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql mysql/*.sql
var embedMigrations embed.FS

// Dialect names accepted by [Migrate]. They double as the embedded
// directory names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
	DialectMySQL    = "mysql"
)

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")
	// ErrUnknownDialect is returned for a dialect with no embedded migrations.
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// Migrate brings the schema for dialect up to date. Running it against an
// already migrated database is a no-op. goose progress lines go to log;
// a nil log discards them.
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	switch dialect {
	case DialectPostgres, DialectSQLite, DialectMySQL:
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if log == nil {
		log = logger.Nop()
	}
	goose.SetLogger(gooseLogger{log: log})
	defer goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
