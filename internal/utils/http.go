package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-record-sync/models"
)

// RetryAfterHeader carries the server pacing hint in whole seconds.
const RetryAfterHeader = "Retry-After"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteRemoteError writes remoteErr as the JSON error body. When the error
// carries a retry hint, the Retry-After header is set to the hint rounded up
// to whole seconds.
func WriteRemoteError(w http.ResponseWriter, remoteErr *models.RemoteError, statusCode int) (int, error) {
	if d, ok := remoteErr.RetryAfter(); ok {
		w.Header().Set(RetryAfterHeader, strconv.Itoa(int(math.Ceil(d.Seconds()))))
	}
	return WriteJSON(w, remoteErr, statusCode)
}
