// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks record store requests before they reach storage.
//
// The record store server validates every zone, subscription, modify and
// change request with [RecordValidator]. A malformed batch is rejected as a
// whole with INVALID_ARGUMENTS instead of failing record by record.
// Callers may restrict a check to named fields (see the Field* constants).
package validators

import "context"

// Validator checks a request model, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
