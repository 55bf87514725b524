package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/tui"
	"github.com/MKhiriev/go-diary/models"
)

type App struct {
	session *session.Session
	ui      UI
	closers []func() error

	logger *logger.Logger
}

// NewApp builds the client for cfg. In remote mode every operation goes to
// the diary server; otherwise the database is opened in-process and its
// schema ensured.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	loc, err := time.LoadLocation(cfg.App.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownTimezone, cfg.App.DisplayTimezone)
	}

	app := &App{logger: log}
	log.Info().Str("func", "client.NewApp").Str("build", buildInfo.String()).Msg("starting client")

	backend, err := app.newBackend(ctx, cfg, log)
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}

	app.session = session.New(backend, log)
	app.ui = tui.New(app.session, loc, buildInfo, log)
	return app, nil
}

func (a *App) newBackend(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (session.Backend, error) {
	if cfg.Remote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		log.Info().Str("func", "client.newBackend").Str("server", cfg.Adapter.HTTPAddress).Msg("remote mode")
		return session.NewRemoteBackend(serverAdapter), nil
	}

	storages, err := store.NewStorages(ctx, config.DB{DSN: cfg.Storage.DB.DSN}, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}
	a.closers = append(a.closers, storages.Close)

	if err = storages.InitializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	services, err := service.NewServices(storages, cfg.App.ServerApp(), log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	log.Info().Str("func", "client.newBackend").Msg("local mode")
	return session.NewLocalBackend(services), nil
}

// Run alternates the login flow and the main loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.session.Logout()
		a.logger.Info().Str("func", "App.Run").Msg("logged out")
	}
}

// Close releases the database in local mode.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	return errors.Join(errs...)
}
