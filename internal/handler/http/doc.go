// Package http implements the HTTP transport of the record store server.
//
// It exposes the zone, subscription, record and change endpoints used by the
// sync engine's adapter, the account status endpoint and a websocket stream
// of push notifications. Failures are written as models.RemoteError JSON
// bodies; a retry hint is also sent in the Retry-After header. Request
// tracing, access logging, authentication and compression are handled by
// middleware before a request reaches the service layer.
package http
