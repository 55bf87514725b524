package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAdminService(repo, logger.Nop())

	gomock.InOrder(
		repo.EXPECT().DeleteUser(gomock.Any(), "alice").Return(nil),
		repo.EXPECT().DeleteUser(gomock.Any(), "alice").Return(store.ErrNoUserWasFound),
	)

	require.NoError(t, svc.DeleteUser(context.Background(), "alice"))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "alice"), store.ErrNoUserWasFound)
}

func TestAdminService_DeleteUser_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAdminService(mock.NewMockUserRepository(ctrl), logger.Nop())

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), ""), ErrInvalidDataProvided)
}
