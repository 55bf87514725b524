package adapter

import "errors"

// Errors returned by [ServerAdapter] for non-2xx responses. The server's
// {"error": ...} message is appended after the sentinel.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("server is unavailable")
)

var (
	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
	ErrMissingToken   = errors.New("login response carries no token")
)
