package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

var codeStatusMap = map[models.ErrorCode]int{
	models.ErrorCodeInvalidArguments:    http.StatusBadRequest,
	models.ErrorCodeNotAuthenticated:    http.StatusUnauthorized,
	models.ErrorCodeUnknownItem:         http.StatusNotFound,
	models.ErrorCodeZoneNotFound:        http.StatusNotFound,
	models.ErrorCodeUserDeletedZone:     http.StatusNotFound,
	models.ErrorCodeServerRecordChanged: http.StatusConflict,
	models.ErrorCodeChangeTokenExpired:  http.StatusGone,
	models.ErrorCodeLimitExceeded:       http.StatusRequestEntityTooLarge,
	models.ErrorCodeRequestRateLimited:  http.StatusTooManyRequests,
	models.ErrorCodeZoneBusy:            http.StatusServiceUnavailable,
	models.ErrorCodeServiceUnavailable:  http.StatusServiceUnavailable,
	models.ErrorCodePartialFailure:      http.StatusOK,
	models.ErrorCodeInternalError:       http.StatusInternalServerError,
}

var errorCodeMap = map[error]models.ErrorCode{
	service.ErrTokenIsExpiredOrInvalid: models.ErrorCodeNotAuthenticated,
	ErrEmptyAuthorizationHeader:        models.ErrorCodeNotAuthenticated,
	ErrInvalidAuthorizationHeader:      models.ErrorCodeNotAuthenticated,
	ErrAccountRestricted:               models.ErrorCodeNotAuthenticated,
	service.ErrVersionIsNotSpecified:   models.ErrorCodeInternalError,
}

// remoteErrorFrom returns err as a *models.RemoteError. Errors that are not
// remote errors already are mapped by sentinel, falling back to
// INTERNAL_ERROR.
func remoteErrorFrom(err error) *models.RemoteError {
	if remoteErr, ok := models.AsRemoteError(err); ok {
		return remoteErr
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return models.NewRemoteError(code, "%v", err)
		}
	}
	return models.NewRemoteError(models.ErrorCodeInternalError, "%s", http.StatusText(http.StatusInternalServerError))
}

func statusFromCode(code models.ErrorCode) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a RemoteError body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	remoteErr := remoteErrorFrom(err)
	status := statusFromCode(remoteErr.Code)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("func", funcName).
		Str("code", string(remoteErr.Code)).
		Int("status", status).
		Msg("request failed")

	utils.WriteRemoteError(w, remoteErr, status)
}
