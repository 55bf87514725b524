package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type adminService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{userRepository: userRepository, logger: logger}
}

func (s *adminService) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("error deleting user %q: %w", username, err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user and entries deleted")
	return nil
}
