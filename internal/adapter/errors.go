package adapter

import "errors"

var (
	// ErrEmptyAddress is returned by constructors when no record store
	// address is configured.
	ErrEmptyAddress = errors.New("record store address is empty")

	// ErrListenerStopped is returned by the notification listener once Stop
	// was called.
	ErrListenerStopped = errors.New("notification listener is stopped")
)
