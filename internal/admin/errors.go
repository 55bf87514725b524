package admin

import "errors"

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingUsername  = errors.New("username argument is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyPassword    = errors.New("password must not be empty")
)
