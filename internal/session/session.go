// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// State is the authentication state of a [Session].
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Identity is the authenticated user of a session together with the bearer
// token that proves it.
type Identity struct {
	UserID   int64
	Username string
	Token    string
}

// Session is safe for concurrent use; bubbletea commands run on their own
// goroutines.
type Session struct {
	backend Backend

	mu       sync.RWMutex
	identity *Identity

	logger *logger.Logger
}

func New(backend Backend, logger *logger.Logger) *Session {
	return &Session{backend: backend, logger: logger}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Anonymous
	}
	return Authenticated
}

// Identity returns the held identity and whether the session is
// Authenticated.
func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Login authenticates and moves the session to Authenticated.
func (s *Session) Login(ctx context.Context, username, password string) (Identity, error) {
	if s.State() == Authenticated {
		return Identity{}, ErrAlreadyAuthenticated
	}

	identity, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return Identity{}, err
	}

	// another Login may have finished while the backend call was in flight
	s.mu.Lock()
	if s.identity != nil {
		s.mu.Unlock()
		return Identity{}, ErrAlreadyAuthenticated
	}
	s.identity = &identity
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.Login").Int64("id", identity.UserID).Msg("session authenticated")
	return identity, nil
}

// Register creates an account without changing the session state; the user
// logs in separately.
func (s *Session) Register(ctx context.Context, username, password string) (models.User, error) {
	return s.backend.Register(ctx, username, password)
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity != nil {
		s.logger.Info().Str("func", "Session.Logout").Int64("id", s.identity.UserID).Msg("session closed")
	}
	s.identity = nil
}

func (s *Session) AddEntry(ctx context.Context, title, content string) (models.Entry, error) {
	identity, err := s.requireIdentity()
	if err != nil {
		return models.Entry{}, err
	}

	entry, err := s.backend.CreateEntry(ctx, identity, models.EntryRequest{Title: title, Content: content})
	return entry, s.observe(err)
}

// Entries lists the user's entries, newest first.
func (s *Session) Entries(ctx context.Context) ([]models.Entry, error) {
	identity, err := s.requireIdentity()
	if err != nil {
		return nil, err
	}

	entries, err := s.backend.ListEntries(ctx, identity)
	return entries, s.observe(err)
}

func (s *Session) Entry(ctx context.Context, entryID int64) (models.Entry, error) {
	identity, err := s.requireIdentity()
	if err != nil {
		return models.Entry{}, err
	}

	entry, err := s.backend.GetEntry(ctx, identity, entryID)
	return entry, s.observe(err)
}

func (s *Session) UpdateEntry(ctx context.Context, entryID int64, title, content string) (models.Entry, error) {
	identity, err := s.requireIdentity()
	if err != nil {
		return models.Entry{}, err
	}

	entry, err := s.backend.UpdateEntry(ctx, identity, entryID, models.EntryRequest{Title: title, Content: content})
	return entry, s.observe(err)
}

func (s *Session) DeleteEntry(ctx context.Context, entryID int64) error {
	identity, err := s.requireIdentity()
	if err != nil {
		return err
	}

	return s.observe(s.backend.DeleteEntry(ctx, identity, entryID))
}

// Version is available in both states.
func (s *Session) Version(ctx context.Context) (string, error) {
	return s.backend.Version(ctx)
}

func (s *Session) requireIdentity() (Identity, error) {
	identity, ok := s.Identity()
	if !ok {
		return Identity{}, ErrNotAuthenticated
	}
	return identity, nil
}

// observe drops an identity whose token the backend no longer accepts or
// whose account was deleted.
func (s *Session) observe(err error) error {
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) || errors.Is(err, store.ErrUserReferenceViolation) {
		s.Logout()
	}
	return err
}
