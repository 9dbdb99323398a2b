// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoRecordStoreHandler = errors.New("record store API handler is not created")
	errNoListenAddress      = errors.New("record store API has no listen address")
)
