// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address to expose the record store on.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices is returned when the record store API would be mounted
	// without the services it routes to.
	errNoServices = errors.New("record store services are not configured")
)
