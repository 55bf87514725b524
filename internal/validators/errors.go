package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidEntryID = errors.New("invalid entry ID")
	ErrEmptyTitle     = errors.New("title is required")
	ErrTitleTooLong   = errors.New("title is too long")
	ErrEmptyContent   = errors.New("content is required")
	ErrContentTooLong = errors.New("content is too long")
	ErrEmptyTimestamp = errors.New("timestamp is required")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrUsernameHasSpace = errors.New("username must not contain whitespace")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is too long")
)
