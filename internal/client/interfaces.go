// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a sync client process: it keeps the local bookmark store in step
// with the record store until it is interrupted.
type Client interface {
	// Run blocks until SIGINT or SIGTERM and returns once every worker has
	// stopped and the local storage is closed.
	Run() error
}

var _ Client = (*App)(nil)
