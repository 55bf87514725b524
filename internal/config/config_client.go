package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DisplayTimezone is the zone entries are grouped and shown in.
	DisplayTimezone string
	// Version is shown on the build info page.
	Version string
	// TokenSignKey signs tokens in local mode, where the client hosts the
	// services in-process.
	TokenSignKey string
	// TokenIssuer and TokenDuration mirror [App] for local mode.
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerApp returns the in-process service settings used in local mode.
func (c ClientApp) ServerApp() App {
	return App{
		TokenSignKey:    c.TokenSignKey,
		TokenIssuer:     c.TokenIssuer,
		TokenDuration:   c.TokenDuration,
		DisplayTimezone: c.DisplayTimezone,
		Version:         c.Version,
	}
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the connection string used in local mode.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// Remote reports whether the client talks to a diary server instead of
// opening the database itself.
func (cfg *ClientConfig) Remote() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	tokenSignKey := cfg.App.TokenSignKey
	if tokenSignKey == "" {
		// local mode never exposes the token outside the process
		tokenSignKey = "go-diary-local"
	}

	return &ClientConfig{
		App: ClientApp{
			DisplayTimezone: cfg.App.DisplayTimezone,
			Version:         cfg.App.Version,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
}
