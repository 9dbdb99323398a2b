// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies a failure reported by the remote record store.
// Codes are strings so they read well in logs and serialize naturally.
type ErrorCode string

const (
	// ErrorCodeZoneNotFound means the addressed zone does not exist.
	ErrorCodeZoneNotFound ErrorCode = "ZONE_NOT_FOUND"
	// ErrorCodeUserDeletedZone means the zone was removed by the account owner.
	ErrorCodeUserDeletedZone ErrorCode = "USER_DELETED_ZONE"
	// ErrorCodeLimitExceeded means the request was too large to process.
	ErrorCodeLimitExceeded ErrorCode = "LIMIT_EXCEEDED"
	// ErrorCodePartialFailure means some items of a batch failed; see
	// [RemoteError.PartialErrors].
	ErrorCodePartialFailure ErrorCode = "PARTIAL_FAILURE"
	// ErrorCodeServerRecordChanged means the save policy rejected a write
	// because the stored record has a different change tag.
	ErrorCodeServerRecordChanged ErrorCode = "SERVER_RECORD_CHANGED"
	// ErrorCodeBatchRequestFailed marks an item that was not processed because
	// another item in the same batch failed.
	ErrorCodeBatchRequestFailed ErrorCode = "BATCH_REQUEST_FAILED"
	// ErrorCodeUnknownItem means the addressed record or subscription does
	// not exist.
	ErrorCodeUnknownItem ErrorCode = "UNKNOWN_ITEM"
	// ErrorCodeChangeTokenExpired means the change token can no longer be
	// used and a full fetch is required.
	ErrorCodeChangeTokenExpired ErrorCode = "CHANGE_TOKEN_EXPIRED"
	// ErrorCodeZoneBusy means the server is temporarily overloaded for the zone.
	ErrorCodeZoneBusy ErrorCode = "ZONE_BUSY"
	// ErrorCodeRequestRateLimited means the client exceeded its request rate.
	ErrorCodeRequestRateLimited ErrorCode = "REQUEST_RATE_LIMITED"
	// ErrorCodeServiceUnavailable means the service cannot be reached.
	ErrorCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrorCodeNetworkUnavailable means there is no network route.
	ErrorCodeNetworkUnavailable ErrorCode = "NETWORK_UNAVAILABLE"
	// ErrorCodeNetworkFailure means the connection broke mid-request.
	ErrorCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"
	// ErrorCodeServerResponseLost means the request may have been applied but
	// the response never arrived.
	ErrorCodeServerResponseLost ErrorCode = "SERVER_RESPONSE_LOST"
	// ErrorCodeNotAuthenticated means no valid account token was presented.
	ErrorCodeNotAuthenticated ErrorCode = "NOT_AUTHENTICATED"
	// ErrorCodeInvalidArguments means the request was malformed.
	ErrorCodeInvalidArguments ErrorCode = "INVALID_ARGUMENTS"
	// ErrorCodeInternalError means an unexpected server-side failure.
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// RemoteError is the error value returned by every remote store operation.
// It travels as JSON between the server and the client adapter.
type RemoteError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`

	// RetryAfterSeconds is the server's pacing hint. Nil means the server did
	// not suggest a retry.
	RetryAfterSeconds *float64 `json:"retry_after_seconds,omitempty"`

	// ClientRecord and ServerRecord are set for SERVER_RECORD_CHANGED.
	ClientRecord *RemoteRecord `json:"client_record,omitempty"`
	ServerRecord *RemoteRecord `json:"server_record,omitempty"`

	// PartialErrors maps record names to their individual failure for
	// PARTIAL_FAILURE.
	PartialErrors map[string]*RemoteError `json:"partial_errors,omitempty"`
}

// NewRemoteError constructs a [RemoteError] with a formatted message.
func NewRemoteError(code ErrorCode, format string, args ...any) *RemoteError {
	return &RemoteError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "remote store error: " + string(e.Code)
	}
	return fmt.Sprintf("remote store error: %s: %s", e.Code, e.Message)
}

// WithRetryAfter sets the retry hint and returns e.
func (e *RemoteError) WithRetryAfter(d time.Duration) *RemoteError {
	seconds := d.Seconds()
	e.RetryAfterSeconds = &seconds
	return e
}

// RetryAfter returns the server-suggested delay. The boolean is false when
// the server gave none.
func (e *RemoteError) RetryAfter() (time.Duration, bool) {
	if e == nil || e.RetryAfterSeconds == nil {
		return 0, false
	}
	return time.Duration(*e.RetryAfterSeconds * float64(time.Second)), true
}

// AsRemoteError unwraps err into a *RemoteError.
func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

// IsZoneDeleted reports whether err means the zone no longer exists.
func IsZoneDeleted(err error) bool {
	remoteErr, ok := AsRemoteError(err)
	if !ok {
		return false
	}
	return remoteErr.Code == ErrorCodeZoneNotFound || remoteErr.Code == ErrorCodeUserDeletedZone
}

// RetryAfter returns the server-suggested delay carried by err, if any.
func RetryAfter(err error) (time.Duration, bool) {
	remoteErr, ok := AsRemoteError(err)
	if !ok {
		return 0, false
	}
	return remoteErr.RetryAfter()
}
