// Package workers runs the long-lived parts of the sync client.
//
// [Workers] starts the sync engine, the notification listener and the
// periodic sync job together and stops them in reverse order. [Dispatcher]
// is the engine's execution model: one serial queue that owns all sync
// state, plus a bounded executor for calls to the remote record store whose
// completions are handed back to the serial queue.
package workers

// Worker is a background component started once at application start.
// Run must not block: implementations spawn their own goroutines.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines, timers or
// connections to release on shutdown.
type Stopper interface {
	Stop()
}
