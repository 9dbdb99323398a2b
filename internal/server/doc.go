// Package server wires and runs the record store's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown, after which the registered closers release the notification hub
// and the storage.
package server
