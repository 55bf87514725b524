package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not authenticated", session.ErrNotAuthenticated, "Please log in first"},
		{"expired", fmt.Errorf("list: %w", service.ErrTokenIsExpiredOrInvalid), "Your session has expired, please log in again"},
		{"account gone", store.ErrUserReferenceViolation, "Your account no longer exists"},
		{"missing entry", store.ErrEntryNotFound, "The entry no longer exists"},
		{"foreign entry", store.ErrEntryForbidden, "The entry belongs to another user"},
		{"unavailable", fmt.Errorf("ping: %w", store.ErrStoreUnavailable), "The diary is unavailable right now, try again later"},
		{"network", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "No network or the server is unavailable"},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), "No network or the server is unavailable"},
		{"validation detail", fmt.Errorf("create entry: %w: title is required", service.ErrInvalidDataProvided), "invalid data provided: title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
