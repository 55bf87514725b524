// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/internal/store"
)

// ErrUserQuit is returned when the user leaves the program from a menu.
var ErrUserQuit = errors.New("user quit")

var friendlyErrors = []struct {
	err  error
	text string
}{
	{store.ErrStoreUnavailable, "The diary is unavailable right now, try again later"},
	{session.ErrNotAuthenticated, "Please log in first"},
	{service.ErrTokenIsExpiredOrInvalid, "Your session has expired, please log in again"},
	{store.ErrUserReferenceViolation, "Your account no longer exists"},
	{service.ErrInvalidCredentials, "Invalid username or password"},
	{store.ErrLoginAlreadyExists, "Username already exists"},
	{store.ErrEntryNotFound, "The entry no longer exists"},
	{store.ErrEntryForbidden, "The entry belongs to another user"},
}

// humanizeError renders err for the status line. Validation failures keep
// their detail, e.g. "invalid data provided: title is too long".
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, f := range friendlyErrors {
		if errors.Is(err, f.err) {
			return f.text
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	if errors.Is(err, service.ErrInvalidDataProvided) {
		if i := strings.Index(err.Error(), service.ErrInvalidDataProvided.Error()); i >= 0 {
			return err.Error()[i:]
		}
	}

	return err.Error()
}
