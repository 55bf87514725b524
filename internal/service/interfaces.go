package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials and issues bearer
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService manages diary entries on behalf of an already authenticated
// user. The userID argument always comes from the caller's identity.
type EntryService interface {
	Create(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error)
	List(ctx context.Context, userID int64) ([]models.Entry, error)
	Get(ctx context.Context, userID, entryID int64) (models.Entry, error)
	Update(ctx context.Context, userID, entryID int64, req models.EntryRequest) (models.Entry, error)
	Delete(ctx context.Context, userID, entryID int64) error
}

// AdminService holds operations reserved for the administrative CLI.
type AdminService interface {
	// DeleteUser removes the account and all of its entries.
	DeleteUser(ctx context.Context, username string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
