package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// ServerAdapter is the client side of the diary HTTP API.
//
// Entry methods take the bearer token explicitly; the adapter keeps no
// identity of its own.
type ServerAdapter interface {
	// Register creates an account. It does not log in.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	ListEntries(ctx context.Context, token string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, token string, req models.EntryRequest) (models.Entry, error)
	GetEntry(ctx context.Context, token string, entryID int64) (models.Entry, error)
	UpdateEntry(ctx context.Context, token string, entryID int64, req models.EntryRequest) (models.Entry, error)
	DeleteEntry(ctx context.Context, token string, entryID int64) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
