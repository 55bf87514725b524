package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

func diaryEntries() []models.Entry {
	return []models.Entry{
		{ID: 3, UserID: 1, Title: "Evening walk", Content: "Long walk by the lake.", Timestamp: "05 Jan 2025, 07:30 PM"},
		{ID: 2, UserID: 1, Title: "Morning pages", Content: "Coffee first.\nThen writing.", Timestamp: "05 Jan 2025, 08:15 AM"},
		{ID: 1, UserID: 1, Title: "Old news", Content: "Yesterday was quiet.", Timestamp: "04 Jan 2025, 09:00 PM"},
	}
}

type mainLoopFixture struct {
	model   mainLoopModel
	backend *fakeBackend
	session *session.Session
	copied  string
}

func newMainLoopFixture(t *testing.T) *mainLoopFixture {
	t.Helper()
	loc := kolkata(t)
	fb := newFakeBackend(diaryEntries()...)
	sess := newTestSession(fb)
	_, err := sess.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	f := &mainLoopFixture{backend: fb, session: sess}
	now := time.Date(2025, 1, 5, 21, 0, 0, 0, loc)

	m := newMainLoopModel(context.Background(), sess, loc)
	m.now = func() time.Time { return now }
	m.day = session.StartOfDay(now, loc)
	m.copy = func(s string) error {
		f.copied = s
		return nil
	}
	f.model = m

	f.send(t, firstMsg[entriesLoadedMsg](t, m.Init()))
	return f
}

func (f *mainLoopFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	f.model = model
	return cmd
}

func TestMainLoop_ViewShowsSelectedDay(t *testing.T) {
	f := newMainLoopFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "DIARY OF ALICE")
	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "07:30 PM  Evening walk")
	assert.Contains(t, view, "08:15 AM  Morning pages")
	assert.NotContains(t, view, "Old news")

	f.send(t, keyOf(tea.KeyLeft))
	view = f.model.View()
	assert.Contains(t, view, "Yesterday")
	assert.Contains(t, view, "Old news")
	assert.NotContains(t, view, "Evening walk")

	f.send(t, keyOf(tea.KeyRight))
	f.send(t, keyOf(tea.KeyRight))
	assert.Contains(t, f.model.View(), "No entries for this date.")

	f.send(t, runes("t"))
	assert.Contains(t, f.model.View(), "Evening walk")
}

func TestMainLoop_ExpandSelectedEntry(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyDown))
	assert.Equal(t, 1, f.model.viewIdx)
	assert.Contains(t, f.model.View(), "Coffee first. Then writing.")

	f.send(t, keyOf(tea.KeyEnter))
	assert.True(t, f.model.expanded)
	view := f.model.View()
	assert.Contains(t, view, "Coffee first.\n")
	assert.Contains(t, view, "Then writing.")

	f.send(t, keyOf(tea.KeyUp))
	assert.Equal(t, 0, f.model.viewIdx)
	assert.False(t, f.model.expanded)
}

func TestMainLoop_AddRequiresBothFields(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyF1))
	assert.Equal(t, tabAdd, f.model.tab)

	f.model.addTitle.SetValue("only title")
	cmd := f.send(t, keyOf(tea.KeyCtrlS))

	assert.Equal(t, feedbackWarning, f.model.status.kind)
	assert.Equal(t, fieldsRequired, f.model.status.text)
	assert.False(t, f.model.saving)
	for _, msg := range exec(cmd) {
		_, saved := msg.(entrySavedMsg)
		assert.False(t, saved)
	}
	assert.Len(t, f.backend.entries, 3)
}

func TestMainLoop_AddEntry(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyF1))
	f.model.addTitle.SetValue("  Lunch  ")
	f.model.addContent.SetValue("Dal and rice.")

	cmd := f.send(t, keyOf(tea.KeyCtrlS))
	assert.True(t, f.model.saving)

	saved := firstMsg[entrySavedMsg](t, cmd)
	require.NoError(t, saved.err)
	assert.Equal(t, "Lunch", saved.entry.Title)

	cmd = f.send(t, saved)
	assert.False(t, f.model.saving)
	assert.Equal(t, feedbackSuccess, f.model.status.kind)
	assert.Equal(t, "Entry saved successfully!", f.model.status.text)
	assert.Empty(t, f.model.addTitle.Value())
	assert.Empty(t, f.model.addContent.Value())

	f.send(t, firstMsg[entriesLoadedMsg](t, cmd))
	assert.Len(t, f.model.entries, 4)

	f.send(t, keyOf(tea.KeyF2))
	assert.Contains(t, f.model.View(), "11:00 AM  Lunch")
}

func TestMainLoop_DeleteAsksForConfirmation(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, runes("d"))
	require.NotNil(t, f.model.confirming)
	assert.Contains(t, f.model.View(), `Delete "Evening walk"?`)

	f.send(t, runes("n"))
	assert.Nil(t, f.model.confirming)
	assert.Len(t, f.backend.entries, 3)

	f.send(t, runes("d"))
	cmd := f.send(t, runes("y"))
	assert.Nil(t, f.model.confirming)

	deleted := firstMsg[entryDeletedMsg](t, cmd)
	require.NoError(t, deleted.err)

	cmd = f.send(t, deleted)
	assert.Equal(t, "'Evening walk' deleted.", f.model.status.text)

	f.send(t, firstMsg[entriesLoadedMsg](t, cmd))
	view := f.model.View()
	assert.NotContains(t, view, "Evening walk")
	assert.Contains(t, view, "Morning pages")
}

func TestMainLoop_DeleteOnEmptyDayIsIgnored(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyRight))
	f.send(t, runes("d"))
	assert.Nil(t, f.model.confirming)
}

func TestMainLoop_CopyContent(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyDown))
	cmd := f.send(t, runes("c"))
	f.send(t, firstMsg[copiedMsg](t, cmd))

	assert.Equal(t, "Coffee first.\nThen writing.", f.copied)
	assert.Equal(t, "Content copied to clipboard.", f.model.status.text)
}

func TestMainLoop_UpdateEntry(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyF3))
	view := f.model.View()
	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "Yesterday")

	f.send(t, keyOf(tea.KeyDown))
	f.send(t, keyOf(tea.KeyEnter))
	require.NotNil(t, f.model.editing)
	assert.Equal(t, int64(2), f.model.editing.ID)
	assert.Equal(t, "Morning pages", f.model.updTitle.Value())
	assert.Equal(t, "Coffee first.\nThen writing.", f.model.updContent.Value())

	f.model.updTitle.SetValue("Morning pages, revised")
	cmd := f.send(t, keyOf(tea.KeyCtrlS))
	saved := firstMsg[entrySavedMsg](t, cmd)
	require.NoError(t, saved.err)
	assert.True(t, saved.updated)

	cmd = f.send(t, saved)
	assert.Nil(t, f.model.editing)
	assert.Equal(t, "'Morning pages, revised' updated successfully!", f.model.status.text)

	f.send(t, firstMsg[entriesLoadedMsg](t, cmd))
	assert.Equal(t, "Morning pages, revised", f.model.entries[1].Title)
}

func TestMainLoop_UpdateEscGoesBack(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, keyOf(tea.KeyF3))
	f.send(t, keyOf(tea.KeyEnter))
	require.NotNil(t, f.model.editing)

	f.model.updContent.SetValue("   ")
	f.send(t, keyOf(tea.KeyCtrlS))
	assert.Equal(t, fieldsRequired, f.model.status.text)

	f.send(t, keyOf(tea.KeyEsc))
	assert.Nil(t, f.model.editing)
	assert.Equal(t, "Old news", f.backend.entries[2].Title)
}

func TestMainLoop_Logout(t *testing.T) {
	f := newMainLoopFixture(t)

	cmd := f.send(t, runes("l"))
	assert.True(t, isQuit(cmd))
	assert.True(t, f.model.logout)
	assert.Equal(t, session.Anonymous, f.session.State())
}

func TestMainLoop_CtrlCQuitsWithoutLogout(t *testing.T) {
	f := newMainLoopFixture(t)

	cmd := f.send(t, keyOf(tea.KeyCtrlC))
	assert.True(t, isQuit(cmd))
	assert.False(t, f.model.logout)
	assert.Equal(t, session.Authenticated, f.session.State())
}

func TestMainLoop_ExpiredTokenEndsLoop(t *testing.T) {
	f := newMainLoopFixture(t)
	f.backend.listErr = service.ErrTokenIsExpiredOrInvalid

	cmd := f.send(t, runes("r"))
	cmd = f.send(t, firstMsg[entriesLoadedMsg](t, cmd))

	assert.True(t, isQuit(cmd))
	assert.True(t, f.model.logout)
	assert.Equal(t, session.Anonymous, f.session.State())
}

func TestMainLoop_StoreUnavailableKeepsSession(t *testing.T) {
	f := newMainLoopFixture(t)
	f.backend.listErr = store.ErrStoreUnavailable

	cmd := f.send(t, runes("r"))
	cmd = f.send(t, firstMsg[entriesLoadedMsg](t, cmd))

	assert.False(t, isQuit(cmd))
	assert.False(t, f.model.logout)
	assert.Equal(t, feedbackError, f.model.status.kind)
	assert.Contains(t, f.model.View(), "The diary is unavailable right now")
	// previously loaded entries stay visible
	assert.Len(t, f.model.entries, 3)
}

func TestMainLoop_StatusClears(t *testing.T) {
	f := newMainLoopFixture(t)

	cmd := f.send(t, runes("c"))
	f.send(t, firstMsg[copiedMsg](t, cmd))
	seq := f.model.statusSeq

	f.send(t, clearStatusMsg{seq: seq - 1})
	assert.NotEmpty(t, f.model.status.text)

	f.send(t, clearStatusMsg{seq: seq})
	assert.Equal(t, feedbackNone, f.model.status.kind)
}
