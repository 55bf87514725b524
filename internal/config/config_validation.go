// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

// validate checks invariants shared by every binary: the display zone
// resolves and no duration is negative.
func (cfg *StructuredConfig) validate() error {
	if _, err := time.LoadLocation(cfg.App.DisplayTimezone); err != nil {
		return fmt.Errorf("%w: display timezone %q: %w", ErrInvalidAppConfigs, cfg.App.DisplayTimezone, err)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

// ValidateStorage reports whether a database connection string is present.
// Its absence is fatal for the server and the admin CLI.
func (cfg *StructuredConfig) ValidateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: STORAGE_DB_DATABASE_URI is not set", ErrInvalidStorageConfigs)
	}

	return nil
}

// ValidateServer checks everything the HTTP server needs at startup.
func (cfg *StructuredConfig) ValidateServer() error {
	if err := cfg.ValidateStorage(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is not set", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is not set", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote() {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: server address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
		}
		if cfg.Adapter.RequestTimeout == 0 {
			return fmt.Errorf("%w: request timeout is not set", ErrInvalidAdapterConfigs)
		}
		return nil
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: either a server address or a database DSN is required", ErrInvalidStorageConfigs)
	}

	return nil
}
