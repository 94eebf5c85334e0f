package server

import "context"

// Server runs the task API until it is told to stop.
type Server interface {
	// Run serves until ctx is done or the listener fails. Stopping through
	// ctx lets in-flight requests finish and returns nil.
	Run(ctx context.Context) error

	// RunUntilSignal is Run with a context cancelled by SIGTERM, SIGINT or
	// SIGQUIT.
	RunUntilSignal() error
}
