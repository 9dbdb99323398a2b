package server

// Server runs the record store API until the process is signalled.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown stops accepting requests, closes open notification streams
	// and runs the registered closers.
	Shutdown()
}
