// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user is Authenticated or quits.
	LoginFlow(ctx context.Context) error
	// MainLoop blocks until the user quits or the session ends. logout
	// reports the latter.
	MainLoop(ctx context.Context) (logout bool, err error)
}
