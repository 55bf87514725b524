// Package tui implements the terminal client: an anonymous flow (menu,
// login, register) and the authenticated main loop with Add, View and
// Update tabs. Every screen talks to the diary through a [session.Session].
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/models"
)

type TUI struct {
	session   *session.Session
	loc       *time.Location
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	options []tea.ProgramOption
}

func New(sess *session.Session, loc *time.Location, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		session:   sess,
		loc:       loc,
		buildInfo: buildInfo,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow runs the anonymous screens until the user logs in. It returns
// [ErrUserQuit] when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session),
	}

	root := NewRootModel(ctx, t.session, pages, pageMenu, t.buildInfo)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || t.session.State() != session.Authenticated {
		return ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.LoginFlow").Int64("id", result.identity.UserID).Msg("user logged in")
	return nil
}

// MainLoop runs the authenticated screens. logout is true when the session
// ended and the caller should return to [TUI.LoginFlow].
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.session, t.loc)
	finalModel, err := t.run(ctx, model)
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, options...).Run()
}
