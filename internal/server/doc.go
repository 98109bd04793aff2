// Package server wires and runs the sync server's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown with a bounded drain period.
package server
