package client

import (
	"context"
	"errors"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/tui"
	"github.com/MKhiriev/go-diary/models"
)

// scriptedUI replays LoginFlow and MainLoop outcomes in order.
type scriptedUI struct {
	logins  []error
	loops   []bool
	loopErr error

	loginCalls int
	loopCalls  int
}

func (u *scriptedUI) LoginFlow(context.Context) error {
	err := u.logins[u.loginCalls]
	u.loginCalls++
	return err
}

func (u *scriptedUI) MainLoop(context.Context) (bool, error) {
	if u.loopErr != nil {
		return false, u.loopErr
	}
	logout := u.loops[u.loopCalls]
	u.loopCalls++
	return logout, nil
}

func newScriptedApp(ui UI) *App {
	return &App{session: session.New(nil, logger.Nop()), ui: ui, logger: logger.Nop()}
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		ui         *scriptedUI
		wantErr    bool
		wantLogins int
		wantLoops  int
	}{
		{
			name:       "quit at menu",
			ui:         &scriptedUI{logins: []error{tui.ErrUserQuit}},
			wantLogins: 1,
		},
		{
			name:       "quit from main loop",
			ui:         &scriptedUI{logins: []error{nil}, loops: []bool{false}},
			wantLogins: 1,
			wantLoops:  1,
		},
		{
			name:       "logout returns to login",
			ui:         &scriptedUI{logins: []error{nil, nil, tui.ErrUserQuit}, loops: []bool{true, true}},
			wantLogins: 3,
			wantLoops:  2,
		},
		{
			name:       "login flow failure",
			ui:         &scriptedUI{logins: []error{errors.New("tty gone")}},
			wantErr:    true,
			wantLogins: 1,
		},
		{
			name:       "main loop failure",
			ui:         &scriptedUI{logins: []error{nil}, loopErr: errors.New("tty gone")},
			wantErr:    true,
			wantLogins: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newScriptedApp(tt.ui).Run(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLogins, tt.ui.loginCalls)
			assert.Equal(t, tt.wantLoops, tt.ui.loopCalls)
		})
	}
}

func localConfig(dsn string) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{
			DisplayTimezone: "Asia/Kolkata",
			Version:         "test",
			TokenSignKey:    "local-key",
			TokenIssuer:     "go-diary",
			TokenDuration:   config.DefaultTokenDuration,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
	}
}

func TestNewApp_LocalMode(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, localConfig("file:client_local?mode=memory&cache=shared"), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, err = app.session.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = app.session.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	entry, err := app.session.AddEntry(ctx, "first", "hello")
	require.NoError(t, err)
	assert.Equal(t, "first", entry.Title)

	version, err := app.session.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test", version)
}

func TestNewApp_RemoteMode(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{DisplayTimezone: "Asia/Kolkata"},
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: config.DefaultRequestTimeout},
	}

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, app.closers)
	assert.Equal(t, session.Anonymous, app.session.State())
	assert.NoError(t, app.Close())
}

func TestNewApp_UnknownTimezone(t *testing.T) {
	cfg := localConfig("file:client_tz?mode=memory&cache=shared")
	cfg.App.DisplayTimezone = "Mars/Olympus"

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrUnknownTimezone)
}

func TestNewApp_UnsupportedDSN(t *testing.T) {
	_, err := NewApp(context.Background(), localConfig("redis://localhost:6379"), models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, store.ErrUnsupportedDSN)
}
