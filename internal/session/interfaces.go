package session

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=backend_mock_test.go -package=session_test

// Backend performs the durable operations of a [Session]. Implementations
// report failures with the store and service sentinels so callers match
// them the same way in local and remote mode.
type Backend interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (Identity, error)

	ListEntries(ctx context.Context, identity Identity) ([]models.Entry, error)
	CreateEntry(ctx context.Context, identity Identity, req models.EntryRequest) (models.Entry, error)
	GetEntry(ctx context.Context, identity Identity, entryID int64) (models.Entry, error)
	UpdateEntry(ctx context.Context, identity Identity, entryID int64, req models.EntryRequest) (models.Entry, error)
	DeleteEntry(ctx context.Context, identity Identity, entryID int64) error

	Version(ctx context.Context) (string, error)
}
