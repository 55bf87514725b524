package store

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists diary accounts.
type UserRepository interface {
	// Register inserts a user and returns it with the assigned id.
	// A taken username yields [ErrLoginAlreadyExists].
	Register(ctx context.Context, username, passwordHash string) (models.User, error)

	// FindUserByUsername returns the user with its stored password hash,
	// or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes the user and, through the foreign key cascade,
	// all of their entries. A missing user yields [ErrNoUserWasFound].
	DeleteUser(ctx context.Context, username string) error
}

// EntryRepository persists diary entries. Every read and write is scoped by
// the owning user id.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.Entry, error)
	UpdateEntry(ctx context.Context, update models.EntryUpdate) error
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}
