package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// mapHTTPError turns a non-2xx response into a *models.RemoteError. A JSON
// error body from the record store is used as is; otherwise the code is
// derived from the status. A Retry-After header fills in a missing hint.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	remoteErr := &models.RemoteError{}
	if err := json.Unmarshal(resp.Body(), remoteErr); err != nil || remoteErr.Code == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		remoteErr = &models.RemoteError{Code: codeForStatus(resp.StatusCode()), Message: body}
	}

	if remoteErr.RetryAfterSeconds == nil {
		if d, ok := parseRetryAfter(resp.Header().Get(utils.RetryAfterHeader)); ok {
			remoteErr.WithRetryAfter(d)
		}
	}

	return remoteErr
}

func codeForStatus(status int) models.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return models.ErrorCodeInvalidArguments
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.ErrorCodeNotAuthenticated
	case http.StatusNotFound:
		return models.ErrorCodeUnknownItem
	case http.StatusRequestEntityTooLarge:
		return models.ErrorCodeLimitExceeded
	case http.StatusTooManyRequests:
		return models.ErrorCodeRequestRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return models.ErrorCodeServiceUnavailable
	default:
		return models.ErrorCodeInternalError
	}
}

// parseRetryAfter accepts both forms of the header: delay seconds and an
// HTTP date.
func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.ParseFloat(value, 64); err == nil && seconds >= 0 {
		return time.Duration(seconds * float64(time.Second)), true
	}
	if at, err := http.ParseTime(value); err == nil {
		return max(time.Until(at), 0), true
	}
	return 0, false
}

// mapTransportError maps a failed round trip onto a connectivity error code.
// Cancellation of the caller's context is returned unchanged.
func mapTransportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr):
		return models.NewRemoteError(models.ErrorCodeNetworkUnavailable, "%s: %v", op, err)
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return models.NewRemoteError(models.ErrorCodeNetworkUnavailable, "%s: %v", op, err)
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return models.NewRemoteError(models.ErrorCodeServerResponseLost, "%s: %v", op, err)
	default:
		return models.NewRemoteError(models.ErrorCodeNetworkFailure, "%s: %v", op, err)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
