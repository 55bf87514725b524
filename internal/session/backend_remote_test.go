// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	diaryhttp "github.com/MKhiriev/go-diary/internal/handler/http"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRemoteBackend(t *testing.T, h http.Handler) session.Backend {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	server, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return session.NewRemoteBackend(server)
}

func newDiaryServer(t *testing.T) http.Handler {
	t.Helper()
	h := diaryhttp.NewHandler(newServices(t), config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	return h.Init()
}

func TestRemoteBackend_EndToEnd(t *testing.T) {
	ctx := context.Background()
	backend := newRemoteBackend(t, newDiaryServer(t))

	user, err := backend.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = backend.Register(ctx, "alice", "pw")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)

	s := session.New(backend, logger.Nop())
	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, session.Anonymous, s.State())

	identity, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, identity.UserID)
	assert.NotEmpty(t, identity.Token)

	for _, title := range []string{"E1", "E2", "E3"} {
		_, err = s.AddEntry(ctx, title, "body of "+title)
		require.NoError(t, err)
	}

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"E3", "E2", "E1"}, []string{entries[0].Title, entries[1].Title, entries[2].Title})

	_, err = s.AddEntry(ctx, "", "no title")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	updated, err := s.UpdateEntry(ctx, entries[0].ID, "E3b", "changed")
	require.NoError(t, err)
	assert.Equal(t, "E3b", updated.Title)

	require.NoError(t, s.DeleteEntry(ctx, entries[0].ID))
	_, err = s.Entry(ctx, entries[0].ID)
	assert.ErrorIs(t, err, store.ErrEntryNotFound)

	version, err := s.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version)
}

func TestRemoteBackend_Forbidden(t *testing.T) {
	ctx := context.Background()
	backend := newRemoteBackend(t, newDiaryServer(t))

	for _, name := range []string{"alice", "bob"} {
		_, err := backend.Register(ctx, name, "pw")
		require.NoError(t, err)
	}

	bob := session.New(backend, logger.Nop())
	_, err := bob.Login(ctx, "bob", "pw")
	require.NoError(t, err)
	bobEntry, err := bob.AddEntry(ctx, "T2", "bob")
	require.NoError(t, err)

	alice := session.New(backend, logger.Nop())
	_, err = alice.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = alice.UpdateEntry(ctx, bobEntry.ID, "x", "y")
	assert.ErrorIs(t, err, store.ErrEntryForbidden)
}

func TestRemoteBackend_StatusTranslation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		logout  bool
	}{
		{"unauthorized drops the session", http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid, true},
		{"unavailable", http.StatusServiceUnavailable, store.ErrStoreUnavailable, false},
		{"not found", http.StatusNotFound, store.ErrEntryNotFound, false},
		{"bad request", http.StatusBadRequest, service.ErrInvalidDataProvided, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/user/login", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Authorization", "Bearer tok")
				_, _ = w.Write([]byte(`{"id":1,"username":"alice","token":"tok"}`))
			})
			mux.HandleFunc("/api/entries/", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			})

			s := session.New(newRemoteBackend(t, mux), logger.Nop())
			_, err := s.Login(context.Background(), "alice", "pw")
			require.NoError(t, err)

			_, err = s.Entries(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.logout, s.State() == session.Anonymous)
		})
	}
}
