package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
)

// localBackend runs the service layer in-process. The identity's token is
// re-validated on every call, so expiry behaves as it does over HTTP.
type localBackend struct {
	services *service.Services
}

func NewLocalBackend(services *service.Services) Backend {
	return &localBackend{services: services}
}

func (b *localBackend) Register(ctx context.Context, username, password string) (models.User, error) {
	return b.services.AuthService.RegisterUser(ctx, username, password)
}

func (b *localBackend) Login(ctx context.Context, username, password string) (Identity, error) {
	user, err := b.services.AuthService.Login(ctx, username, password)
	if err != nil {
		return Identity{}, err
	}

	token, err := b.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: user.UserID, Username: user.Username, Token: token.SignedString}, nil
}

func (b *localBackend) ListEntries(ctx context.Context, identity Identity) ([]models.Entry, error) {
	userID, err := b.userID(ctx, identity)
	if err != nil {
		return nil, err
	}
	return b.services.EntryService.List(ctx, userID)
}

func (b *localBackend) CreateEntry(ctx context.Context, identity Identity, req models.EntryRequest) (models.Entry, error) {
	userID, err := b.userID(ctx, identity)
	if err != nil {
		return models.Entry{}, err
	}
	return b.services.EntryService.Create(ctx, userID, req)
}

func (b *localBackend) GetEntry(ctx context.Context, identity Identity, entryID int64) (models.Entry, error) {
	userID, err := b.userID(ctx, identity)
	if err != nil {
		return models.Entry{}, err
	}
	return b.services.EntryService.Get(ctx, userID, entryID)
}

func (b *localBackend) UpdateEntry(ctx context.Context, identity Identity, entryID int64, req models.EntryRequest) (models.Entry, error) {
	userID, err := b.userID(ctx, identity)
	if err != nil {
		return models.Entry{}, err
	}
	return b.services.EntryService.Update(ctx, userID, entryID, req)
}

func (b *localBackend) DeleteEntry(ctx context.Context, identity Identity, entryID int64) error {
	userID, err := b.userID(ctx, identity)
	if err != nil {
		return err
	}
	return b.services.EntryService.Delete(ctx, userID, entryID)
}

func (b *localBackend) Version(ctx context.Context) (string, error) {
	return b.services.AppInfoService.GetAppVersion(ctx), nil
}

// userID returns the token's subject. A token issued for another user than
// the identity claims is rejected.
func (b *localBackend) userID(ctx context.Context, identity Identity) (int64, error) {
	token, err := b.services.AuthService.ParseToken(ctx, identity.Token)
	if err != nil {
		return 0, err
	}
	if token.UserID != identity.UserID {
		return 0, fmt.Errorf("%w: token subject does not match identity", service.ErrTokenIsExpiredOrInvalid)
	}
	return token.UserID, nil
}
