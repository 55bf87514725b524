package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

type mainTab int

const (
	tabAdd mainTab = iota
	tabView
	tabUpdate
)

var tabTitles = []string{"Add Entry", "View Entries", "Update Entry"}

const (
	previewRunes   = 48
	fieldsRequired = "Please fill in both fields."
)

// statusTTL is how long a status line stays on screen.
var statusTTL = 4 * time.Second

// mainLoopModel is the authenticated part of the client. It ends either
// on ctrl+c or when the session drops back to Anonymous.
type mainLoopModel struct {
	ctx     context.Context
	session *session.Session
	loc     *time.Location
	now     func() time.Time
	copy    func(string) error

	tab     mainTab
	entries []models.Entry
	loading bool

	// view tab
	day        time.Time
	viewIdx    int
	expanded   bool
	confirming *models.Entry

	// add tab
	addTitle   textinput.Model
	addContent textarea.Model
	addFocus   int
	saving     bool

	// update tab
	updIdx     int
	editing    *models.Entry
	updTitle   textinput.Model
	updContent textarea.Model
	updFocus   int

	status    feedback
	statusSeq int

	logout bool
}

func newMainLoopModel(ctx context.Context, sess *session.Session, loc *time.Location) mainLoopModel {
	m := mainLoopModel{
		ctx:        ctx,
		session:    sess,
		loc:        loc,
		now:        time.Now,
		copy:       clipboard.WriteAll,
		tab:        tabView,
		loading:    true,
		addTitle:   newTitleInput(),
		addContent: newContentArea(),
		updTitle:   newTitleInput(),
		updContent: newContentArea(),
	}
	m.day = session.StartOfDay(m.now(), loc)
	return m
}

func newTitleInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "title"
	in.CharLimit = validators.MaxTitleLength
	in.Width = 50
	return in
}

func newContentArea() textarea.Model {
	area := textarea.New()
	area.Placeholder = "Dear diary..."
	area.SetWidth(60)
	area.SetHeight(8)
	area.ShowLineNumbers = false
	area.CharLimit = validators.MaxContentLength
	return area
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadEntries()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.entries = msg.entries
		m.clampSelection()
		return m, nil
	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if msg.updated {
			m.editing = nil
			m.updTitle.SetValue("")
			m.updContent.SetValue("")
			m.updTitle.Blur()
			m.updContent.Blur()
			cmd := m.withStatus(feedbackSuccess, fmt.Sprintf("'%s' updated successfully!", msg.entry.Title), m.cmdLoadEntries())
			return m, cmd
		}
		m.addTitle.SetValue("")
		m.addContent.SetValue("")
		m.focusAdd(0)
		cmd := m.withStatus(feedbackSuccess, "Entry saved successfully!", m.cmdLoadEntries())
		return m, cmd
	case entryDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.expanded = false
		cmd := m.withStatus(feedbackSuccess, fmt.Sprintf("'%s' deleted.", msg.title), m.cmdLoadEntries())
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			cmd := m.withStatus(feedbackWarning, "Could not copy to clipboard: "+msg.err.Error())
			return m, cmd
		}
		cmd := m.withStatus(feedbackSuccess, "Content copied to clipboard.")
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = feedback{}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInputs(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, keys.tabAdd):
		return m.switchTab(tabAdd)
	case key.Matches(msg, keys.tabView):
		return m.switchTab(tabView)
	case key.Matches(msg, keys.tabUpdate):
		return m.switchTab(tabUpdate)
	}

	switch m.tab {
	case tabAdd:
		return m.handleAddKey(msg)
	case tabUpdate:
		return m.handleUpdateKey(msg)
	default:
		return m.handleViewKey(msg)
	}
}

func (m mainLoopModel) switchTab(tab mainTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.confirming = nil
	m.addTitle.Blur()
	m.addContent.Blur()
	if tab == tabAdd {
		m.focusAdd(m.addFocus)
	}
	if tab == tabUpdate && m.editing != nil {
		m.focusUpdate(m.updFocus)
	}
	return m, nil
}

func (m mainLoopModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.focusAdd(1 - m.addFocus)
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		title := strings.TrimSpace(m.addTitle.Value())
		content := strings.TrimSpace(m.addContent.Value())
		if title == "" || content == "" {
			cmd := m.withStatus(feedbackWarning, fieldsRequired)
			return m, cmd
		}
		m.saving = true
		return m, m.cmdAddEntry(title, content)
	}

	return m.forwardToInputs(msg)
}

func (m mainLoopModel) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming != nil {
		switch {
		case key.Matches(msg, keys.yes):
			entry := *m.confirming
			m.confirming = nil
			return m, m.cmdDeleteEntry(entry)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirming = nil
		}
		return m, nil
	}

	visible := m.visibleEntries()

	switch {
	case key.Matches(msg, keys.left):
		m.day = m.day.AddDate(0, 0, -1)
		m.viewIdx, m.expanded = 0, false
	case key.Matches(msg, keys.right):
		m.day = m.day.AddDate(0, 0, 1)
		m.viewIdx, m.expanded = 0, false
	case key.Matches(msg, keys.today):
		m.day = session.StartOfDay(m.now(), m.loc)
		m.viewIdx, m.expanded = 0, false
	case key.Matches(msg, keys.up):
		if m.viewIdx > 0 {
			m.viewIdx--
			m.expanded = false
		}
	case key.Matches(msg, keys.down):
		if m.viewIdx < len(visible)-1 {
			m.viewIdx++
			m.expanded = false
		}
	case key.Matches(msg, keys.enter):
		if len(visible) > 0 {
			m.expanded = !m.expanded
		}
	case key.Matches(msg, keys.delete):
		if len(visible) > 0 {
			entry := visible[m.viewIdx]
			m.confirming = &entry
		}
	case key.Matches(msg, keys.copy):
		if len(visible) > 0 {
			return m, m.cmdCopy(visible[m.viewIdx].Content)
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadEntries()
	case key.Matches(msg, keys.logout):
		m.session.Logout()
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) handleUpdateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing == nil {
		switch {
		case key.Matches(msg, keys.up):
			if m.updIdx > 0 {
				m.updIdx--
			}
		case key.Matches(msg, keys.down):
			if m.updIdx < len(m.entries)-1 {
				m.updIdx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.entries) > 0 {
				entry := m.entries[m.updIdx]
				m.editing = &entry
				m.updTitle.SetValue(entry.Title)
				m.updContent.SetValue(entry.Content)
				m.focusUpdate(0)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.editing = nil
		m.updTitle.Blur()
		m.updContent.Blur()
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.focusUpdate(1 - m.updFocus)
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		title := strings.TrimSpace(m.updTitle.Value())
		content := strings.TrimSpace(m.updContent.Value())
		if title == "" || content == "" {
			cmd := m.withStatus(feedbackWarning, fieldsRequired)
			return m, cmd
		}
		m.saving = true
		return m, m.cmdUpdateEntry(m.editing.ID, title, content)
	}

	return m.forwardToInputs(msg)
}

// forwardToInputs hands msg to the focused form widget, if any.
func (m mainLoopModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.tab == tabAdd && m.addFocus == 0:
		m.addTitle, cmd = m.addTitle.Update(msg)
	case m.tab == tabAdd:
		m.addContent, cmd = m.addContent.Update(msg)
	case m.tab == tabUpdate && m.editing != nil && m.updFocus == 0:
		m.updTitle, cmd = m.updTitle.Update(msg)
	case m.tab == tabUpdate && m.editing != nil:
		m.updContent, cmd = m.updContent.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) focusAdd(i int) {
	m.addFocus = i
	if i == 0 {
		m.addContent.Blur()
		m.addTitle.Focus()
		return
	}
	m.addTitle.Blur()
	m.addContent.Focus()
}

func (m *mainLoopModel) focusUpdate(i int) {
	m.updFocus = i
	if i == 0 {
		m.updContent.Blur()
		m.updTitle.Focus()
		return
	}
	m.updTitle.Blur()
	m.updContent.Focus()
}

// fail reports err, or ends the loop when the session has been dropped
// because the token or the account is gone.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	if m.session.State() == session.Anonymous {
		m.logout = true
		return m, tea.Quit
	}
	cmd := m.withStatus(feedbackError, humanizeError(err))
	return m, cmd
}

func (m *mainLoopModel) withStatus(kind feedbackKind, text string, cmds ...tea.Cmd) tea.Cmd {
	m.status = feedback{kind: kind, text: text}
	m.statusSeq++
	seq := m.statusSeq
	tick := tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
	return tea.Batch(append(cmds, tick)...)
}

func (m mainLoopModel) visibleEntries() []models.Entry {
	return session.FilterByDate(m.entries, m.day, m.loc)
}

func (m *mainLoopModel) clampSelection() {
	if n := len(m.visibleEntries()); m.viewIdx >= n {
		m.viewIdx = max(n-1, 0)
	}
	if m.updIdx >= len(m.entries) {
		m.updIdx = max(len(m.entries)-1, 0)
	}
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		entries, err := sess.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdAddEntry(title, content string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		entry, err := sess.AddEntry(ctx, title, content)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdUpdateEntry(id int64, title, content string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		entry, err := sess.UpdateEntry(ctx, id, title, content)
		return entrySavedMsg{entry: entry, updated: true, err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(entry models.Entry) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return entryDeletedMsg{title: entry.Title, err: sess.DeleteEntry(ctx, entry.ID)}
	}
}

func (m mainLoopModel) cmdCopy(content string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(content)}
	}
}

func (m mainLoopModel) View() string {
	var b strings.Builder

	for i, title := range tabTitles {
		label := fmt.Sprintf("F%d %s", i+1, title)
		if mainTab(i) == m.tab {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(tabStyle.Render(label))
		}
		if i < len(tabTitles)-1 {
			b.WriteString("   ")
		}
	}
	b.WriteString("\n\n")

	if s := m.status.View(); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}

	var hotKeys string
	switch m.tab {
	case tabAdd:
		m.renderAdd(&b)
		hotKeys = "tab: next field │ ctrl+s: save │ f1-f3: tabs"
	case tabUpdate:
		m.renderUpdate(&b)
		if m.editing != nil {
			hotKeys = "tab: next field │ ctrl+s: save │ esc: back"
		} else {
			hotKeys = "↑/↓: select │ enter: edit │ f1-f3: tabs"
		}
	default:
		m.renderView(&b)
		hotKeys = "←/→: day │ t: today │ ↑/↓: select │ enter: expand │ d: delete │ c: copy │ r: refresh │ l: logout"
	}

	title := "DIARY"
	if identity, ok := m.session.Identity(); ok {
		title = "DIARY OF " + strings.ToUpper(identity.Username)
	}

	page := renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
	if m.confirming != nil {
		page += "\n\n" + confirmModel{message: m.confirming.Title}.View()
	}
	return page
}

func (m mainLoopModel) renderAdd(b *strings.Builder) {
	b.WriteString("Title\n")
	b.WriteString(m.addTitle.View())
	b.WriteString("\n\nContent\n")
	b.WriteString(m.addContent.View())
	if m.saving {
		b.WriteString("\n\n[Saving...]")
	}
}

func (m mainLoopModel) renderView(b *strings.Builder) {
	now := m.now()
	b.WriteString(fmt.Sprintf("‹ %s ›\n\n", session.DayLabel(m.day, now, m.loc)))

	if m.loading {
		b.WriteString("Loading...")
		return
	}

	visible := m.visibleEntries()
	if len(visible) == 0 {
		b.WriteString("No entries for this date.")
		return
	}

	for i, e := range visible {
		cursor := " "
		if i == m.viewIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, session.TimeOfDay(e.Timestamp, m.loc), e.Title))
		if i == m.viewIdx && m.expanded {
			for _, line := range strings.Split(e.Content, "\n") {
				b.WriteString("      ")
				b.WriteString(line)
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString("      ")
		b.WriteString(helpStyle.Render(session.Preview(e.Content, previewRunes)))
		b.WriteString("\n")
	}
}

func (m mainLoopModel) renderUpdate(b *strings.Builder) {
	if m.editing != nil {
		b.WriteString(fmt.Sprintf("Editing '%s' (%s)\n\n", m.editing.Title, m.editing.Timestamp))
		b.WriteString("Title\n")
		b.WriteString(m.updTitle.View())
		b.WriteString("\n\nContent\n")
		b.WriteString(m.updContent.View())
		if m.saving {
			b.WriteString("\n\n[Saving...]")
		}
		return
	}

	if len(m.entries) == 0 {
		b.WriteString("No entries yet.")
		return
	}

	for _, group := range session.GroupByDay(m.entries, m.now(), m.loc) {
		b.WriteString(titleStyle.Render(group.Label))
		b.WriteString("\n")
		for _, e := range group.Entries {
			cursor := " "
			if m.entries[m.updIdx].ID == e.ID {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, session.TimeOfDay(e.Timestamp, m.loc), e.Title))
		}
		b.WriteString("\n")
	}
}
