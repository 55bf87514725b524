// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// DetectDialect picks the backend from the scheme of a connection string.
//
//	postgres://, postgresql://   → PostgreSQL
//	mysql://                     → MySQL
//	sqlite://, file:, :memory:,
//	or anything without a scheme → SQLite file
func DetectDialect(dsn string) (Dialect, error) {
	lower := strings.ToLower(dsn)
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty connection string", ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "mysql://"):
		return DialectMySQL, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return DialectSQLite, nil
	case strings.Contains(lower, "://"):
		return "", fmt.Errorf("%w: unknown scheme in %q", ErrUnsupportedDSN, redactDSN(dsn))
	default:
		return DialectSQLite, nil
	}
}

// Open connects to the database described by cfg, choosing the driver from
// the connection string scheme, and verifies the connection with a ping.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DetectDialect(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "Open").Msg("unsupported connection string")
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectMySQL:
		return NewConnectMySQL(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func ping(ctx context.Context, conn *sql.DB, dialect Dialect, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "ping").Str("dialect", string(dialect)).Msg("error connecting database (ping)")
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "ping").Str("dialect", string(dialect)).Msg("connected to database successfully")
	return nil
}

// redactDSN hides the password part of user:password@host for logs.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	schemeEnd := strings.Index(dsn, "://")
	start := schemeEnd + len("://")
	if schemeEnd < 0 {
		start = 0
	}
	colon := strings.Index(dsn[start:at], ":")
	if colon < 0 {
		return dsn
	}
	return dsn[:start+colon+1] + "***" + dsn[at:]
}
