package store

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// Storages aggregates the repositories that share one database pool.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository

	db *DB
}

// NewStorages connects to the database configured in cfg and builds the
// repositories on top of it. The schema is not touched; call
// [Storages.InitializeSchema] for that.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already opened pool.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
		db:              db,
	}
}

// InitializeSchema ensures the users and entries tables exist. It is safe
// to call on every startup.
func (s *Storages) InitializeSchema(ctx context.Context) error {
	return s.db.Migrate(ctx)
}

// Close releases the underlying pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
