// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-record-sync/models"
)

// ErrorKind is the engine's reaction class for a failed remote operation.
type ErrorKind int

const (
	// KindFatal is a failure that cannot be fixed by retrying.
	KindFatal ErrorKind = iota
	// KindZoneMissing means the zone must be created again.
	KindZoneMissing
	// KindCapacityExceeded means the batch was too large and must be split.
	KindCapacityExceeded
	// KindPartialFailure means some items of a batch failed individually.
	KindPartialFailure
	// KindConflict means the save policy rejected a write.
	KindConflict
	// KindConnectivityUnavailable means the store cannot be reached right now.
	KindConnectivityUnavailable
	// KindUnknownItem means the addressed item does not exist.
	KindUnknownItem
	// KindTokenExpired means the change token must be discarded.
	KindTokenExpired
	// KindRetryableWithDelay means the same operation should be sent again
	// after [Classification.RetryAfter].
	KindRetryableWithDelay
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindFatal:
		return "fatal"
	case KindZoneMissing:
		return "zone_missing"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindPartialFailure:
		return "partial_failure"
	case KindConflict:
		return "conflict"
	case KindConnectivityUnavailable:
		return "connectivity_unavailable"
	case KindUnknownItem:
		return "unknown_item"
	case KindTokenExpired:
		return "token_expired"
	case KindRetryableWithDelay:
		return "retryable_with_delay"
	default:
		return "unknown"
	}
}

// Classification is the result of [ClassifyError].
type Classification struct {
	Kind ErrorKind
	// RetryAfter is the delay before resubmission. It is only meaningful for
	// KindRetryableWithDelay and KindCapacityExceeded.
	RetryAfter time.Duration
	// Remote is the underlying store error, nil for errors that did not come
	// from the store.
	Remote *models.RemoteError
}

// Retryable reports whether the operation should be resubmitted unchanged.
func (c Classification) Retryable() bool {
	return c.Kind == KindRetryableWithDelay
}

// ClassifyError maps a remote failure to an [ErrorKind].
//
// The retry delay is the server's hint when it sent one. Throttling codes
// without a hint fall back to defaultDelay; other codes without a hint are
// fatal. Errors that are not a *[models.RemoteError] are fatal.
func ClassifyError(err error, defaultDelay time.Duration) Classification {
	remoteErr, ok := models.AsRemoteError(err)
	if !ok {
		return Classification{Kind: KindFatal}
	}

	c := Classification{Remote: remoteErr}
	hint, hasHint := remoteErr.RetryAfter()

	switch remoteErr.Code {
	case models.ErrorCodeZoneNotFound, models.ErrorCodeUserDeletedZone:
		c.Kind = KindZoneMissing
	case models.ErrorCodeLimitExceeded:
		c.Kind = KindCapacityExceeded
		c.RetryAfter = hint
	case models.ErrorCodePartialFailure:
		c.Kind = KindPartialFailure
	case models.ErrorCodeServerRecordChanged:
		c.Kind = KindConflict
	case models.ErrorCodeServiceUnavailable,
		models.ErrorCodeNetworkUnavailable,
		models.ErrorCodeNetworkFailure,
		models.ErrorCodeServerResponseLost,
		models.ErrorCodeNotAuthenticated:
		c.Kind = KindConnectivityUnavailable
	case models.ErrorCodeUnknownItem:
		c.Kind = KindUnknownItem
	case models.ErrorCodeChangeTokenExpired:
		c.Kind = KindTokenExpired
	case models.ErrorCodeBatchRequestFailed:
		// the item itself was fine
		c.Kind = KindRetryableWithDelay
		c.RetryAfter = hint
	case models.ErrorCodeZoneBusy, models.ErrorCodeRequestRateLimited:
		c.Kind = KindRetryableWithDelay
		c.RetryAfter = defaultDelay
		if hasHint {
			c.RetryAfter = hint
		}
	default:
		c.Kind = KindFatal
		if hasHint {
			c.Kind = KindRetryableWithDelay
			c.RetryAfter = hint
		}
	}

	return c
}
