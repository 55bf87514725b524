package tui

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// fakeBackend keeps one user's diary in memory.
type fakeBackend struct {
	mu sync.Mutex

	entries []models.Entry
	nextID  int64
	created string

	loginErr    error
	registerErr error
	listErr     error
	version     string

	registered []string
}

func newFakeBackend(entries ...models.Entry) *fakeBackend {
	fb := &fakeBackend{version: "1.2.3", nextID: 100, created: "05 Jan 2025, 11:00 AM"}
	fb.entries = append(fb.entries, entries...)
	return fb
}

func (f *fakeBackend) Register(_ context.Context, username, _ string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return models.User{}, f.registerErr
	}
	f.registered = append(f.registered, username)
	return models.User{UserID: 2, Username: username}, nil
}

func (f *fakeBackend) Login(_ context.Context, username, _ string) (session.Identity, error) {
	if f.loginErr != nil {
		return session.Identity{}, f.loginErr
	}
	return session.Identity{UserID: 1, Username: username, Token: "tok"}, nil
}

func (f *fakeBackend) ListEntries(_ context.Context, _ session.Identity) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeBackend) CreateEntry(_ context.Context, identity session.Identity, req models.EntryRequest) (models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	entry := models.Entry{ID: f.nextID, UserID: identity.UserID, Title: req.Title, Content: req.Content, Timestamp: f.created}
	f.entries = append([]models.Entry{entry}, f.entries...)
	return entry, nil
}

func (f *fakeBackend) GetEntry(_ context.Context, _ session.Identity, entryID int64) (models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return models.Entry{}, store.ErrEntryNotFound
}

func (f *fakeBackend) UpdateEntry(_ context.Context, _ session.Identity, entryID int64, req models.EntryRequest) (models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.entries {
		if e.ID == entryID {
			f.entries[i].Title = req.Title
			f.entries[i].Content = req.Content
			return f.entries[i], nil
		}
	}
	return models.Entry{}, store.ErrEntryNotFound
}

func (f *fakeBackend) DeleteEntry(_ context.Context, _ session.Identity, entryID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.entries {
		if e.ID == entryID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return store.ErrEntryNotFound
}

func (f *fakeBackend) Version(context.Context) (string, error) {
	return f.version, nil
}

var _ session.Backend = (*fakeBackend)(nil)


func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func init() {
	statusTTL = time.Millisecond
}

func newTestSession(fb *fakeBackend) *session.Session {
	return session.New(fb, logger.Nop())
}

// exec runs cmd and flattens batches. Messages are not fed back.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, exec(c)...)
	}
	return out
}

// firstMsg returns the first message of type T produced by cmd.
func firstMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range exec(cmd) {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}

func isQuit(cmd tea.Cmd) bool {
	for _, msg := range exec(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
