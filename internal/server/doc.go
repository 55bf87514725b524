// Package server runs the diary HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
