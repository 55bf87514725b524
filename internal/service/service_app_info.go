package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// appInfoService answers GET /api/version/. Remote clients show the value in
// the about window, so it is fixed for the life of the server process.
type appInfoService struct {
	version string
}

// NewAppInfoService takes APP_VERSION as resolved by the config layer, which
// substitutes "dev" when nothing was set. A blank value means the config was
// built by hand and is rejected.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Msg("diary version set")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
