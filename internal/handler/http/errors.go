// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when the request body does not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when the request body exceeds the cap
	// for its route.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrInvalidEntryID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidEntryID = errors.New("invalid entry id")

	// ErrNoUserInContext means an entry route was reached without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
