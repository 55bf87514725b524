package session

import "errors"

var (
	// ErrNotAuthenticated is returned by entry operations of an Anonymous
	// session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyAuthenticated is returned by Login when an identity is held.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)
