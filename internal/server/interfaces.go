package server

import "context"

// Server defines the lifecycle contract of the diary server.
//
// RunServer blocks until the process receives a stop signal or ctx is
// cancelled, then shuts the listener down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
