// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// fallbackDSNEnv is the connection string variable most Postgres hosts
// export. It is read only when STORAGE_DB_DATABASE_URI is unset.
const fallbackDSNEnv = "DATABASE_URL"

// parseEnv fills cfg from the diary's environment: APP_* for tokens, the
// display timezone and the reported version, SERVER_* and ADAPTER_* for the
// two ends of the HTTP API, STORAGE_DB_DATABASE_URI for the database.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv(fallbackDSNEnv)
	}

	return nil
}
