package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 30*time.Second)
//	resp, err := client.R().Get("/api/account")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to address. A bare "host:port" is
// treated as plain HTTP. A zero timeout leaves resty's default in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(address string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(BaseURL(address))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// BaseURL normalises address into an http(s) URL without a trailing slash.
func BaseURL(address string) string {
	address = strings.TrimRight(address, "/")
	if address == "" || strings.Contains(address, "://") {
		return address
	}
	return "http://" + address
}
