// Package server wires and runs the transport servers.
//
// It owns the lifecycle of the HTTP delivery API and the gRPC health
// service of the reference server, and of the local status API of the
// sync client: startup, signal handling and graceful shutdown.
package server
