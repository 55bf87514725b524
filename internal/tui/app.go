package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// quitRequested is sent by the menu when the user leaves the program.
type quitRequested struct{}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	session *session.Session

	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	identity   session.Identity
	buildInfo  models.AppBuildInfo

	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, sess *session.Session, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		session:   sess,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	loadVersion := r.cmdLoadVersion()
	if r.current == nil {
		return loadVersion
	}
	return tea.Batch(r.current.Init(), loadVersion)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case quitRequested:
		r.quitByUser = true
		return r, tea.Quit
	case versionLoadedMsg:
		if msg.err != nil {
			r.serverVersion = "unavailable"
			return r, nil
		}
		r.serverVersion = msg.version
		return r, nil
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()
	case LoginResult:
		// Finalize login flow on success.
		if msg.Err == nil {
			r.identity = msg.Identity
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdLoadVersion() tea.Cmd {
	if r.session == nil {
		return nil
	}
	ctx, sess := r.ctx, r.session
	return func() tea.Msg {
		version, err := sess.Version(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}
