package service

import (
	"fmt"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/crypto"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type Services struct {
	AuthService    AuthService
	EntryService   EntryService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	entryService, err := NewEntryService(storages.EntryRepository, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating entry service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg, logger),
		EntryService:   NewEntryValidationService().Wrap(entryService),
		AdminService:   NewAdminService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
