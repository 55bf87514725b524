package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// remoteBackend talks to a diary server through [adapter.ServerAdapter].
// Transport errors are translated to the sentinels the local backend
// returns.
type remoteBackend struct {
	server adapter.ServerAdapter
}

func NewRemoteBackend(server adapter.ServerAdapter) Backend {
	return &remoteBackend{server: server}
}

func (b *remoteBackend) Register(ctx context.Context, username, password string) (models.User, error) {
	user, err := b.server.Register(ctx, models.Credentials{Username: username, Password: password})
	return user, translate(err, service.ErrInvalidCredentials)
}

func (b *remoteBackend) Login(ctx context.Context, username, password string) (Identity, error) {
	resp, err := b.server.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return Identity{}, translate(err, service.ErrInvalidCredentials)
	}
	return Identity{UserID: resp.UserID, Username: resp.Username, Token: resp.Token}, nil
}

func (b *remoteBackend) ListEntries(ctx context.Context, identity Identity) ([]models.Entry, error) {
	entries, err := b.server.ListEntries(ctx, identity.Token)
	return entries, translate(err, service.ErrTokenIsExpiredOrInvalid)
}

func (b *remoteBackend) CreateEntry(ctx context.Context, identity Identity, req models.EntryRequest) (models.Entry, error) {
	entry, err := b.server.CreateEntry(ctx, identity.Token, req)
	return entry, translate(err, service.ErrTokenIsExpiredOrInvalid)
}

func (b *remoteBackend) GetEntry(ctx context.Context, identity Identity, entryID int64) (models.Entry, error) {
	entry, err := b.server.GetEntry(ctx, identity.Token, entryID)
	return entry, translate(err, service.ErrTokenIsExpiredOrInvalid)
}

func (b *remoteBackend) UpdateEntry(ctx context.Context, identity Identity, entryID int64, req models.EntryRequest) (models.Entry, error) {
	entry, err := b.server.UpdateEntry(ctx, identity.Token, entryID, req)
	return entry, translate(err, service.ErrTokenIsExpiredOrInvalid)
}

func (b *remoteBackend) DeleteEntry(ctx context.Context, identity Identity, entryID int64) error {
	return translate(b.server.DeleteEntry(ctx, identity.Token, entryID), service.ErrTokenIsExpiredOrInvalid)
}

func (b *remoteBackend) Version(ctx context.Context) (string, error) {
	version, err := b.server.Version(ctx)
	return version, translate(err, service.ErrTokenIsExpiredOrInvalid)
}

// remoteErrors maps adapter sentinels to service and store sentinels.
// Unauthorized depends on the call and is handled by translate.
var remoteErrors = []struct {
	from, to error
}{
	{adapter.ErrBadRequest, service.ErrInvalidDataProvided},
	{adapter.ErrConflict, store.ErrLoginAlreadyExists},
	{adapter.ErrNotFound, store.ErrEntryNotFound},
	{adapter.ErrForbidden, store.ErrEntryForbidden},
	{adapter.ErrUnavailable, store.ErrStoreUnavailable},
	{adapter.ErrBadGateway, store.ErrStoreUnavailable},
}

// translate keeps the adapter error in the chain. unauthorized is the
// sentinel a 401 means for this call.
func translate(err, unauthorized error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", unauthorized, err)
	}
	for _, m := range remoteErrors {
		if errors.Is(err, m.from) {
			return fmt.Errorf("%w: %w", m.to, err)
		}
	}
	return err
}
