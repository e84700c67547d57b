package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run serves requests until ctx is done or a listener fails. A server
	// stopped through ctx returns nil.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGTERM, SIGINT and SIGQUIT.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
