package tui

import (
	"github.com/MKhiriev/go-diary/internal/session"
	"github.com/MKhiriev/go-diary/models"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Identity session.Identity
	Err      error
}

// RegisterResult is produced by the registration command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after registration.
type RegisterSuccessNotice struct {
	Username string
}

type versionLoadedMsg struct {
	version string
	err     error
}

type entriesLoadedMsg struct {
	entries []models.Entry
	err     error
}

type entrySavedMsg struct {
	entry   models.Entry
	updated bool
	err     error
}

type entryDeletedMsg struct {
	title string
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
