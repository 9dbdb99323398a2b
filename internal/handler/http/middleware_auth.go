package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the account ID in the
// request context under [utils.AccountIDCtxKey] before delegating to the
// next handler.
//
// Requests are rejected with a NOT_AUTHENTICATED error body when the header
// is missing or malformed, when the token is invalid or expired, and when
// the account is restricted.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		accountID, _ := utils.GetAccountIDFromContext(ctx)
		if h.services.AuthService.AccountStatus(ctx, accountID) == models.AccountStatusRestricted {
			writeError(w, r, "Handler.auth", fmt.Errorf("%w: %s", ErrAccountRestricted, accountID))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth authenticates the request when it carries an "Authorization"
// header and passes anonymous requests through unchanged. A header that is
// present but invalid is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeError(w, r, "Handler.optionalAuth", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate parses the bearer token and returns ctx enriched with the
// account ID, both as a context value and as a field of the request logger.
func (h *Handler) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return ctx, fmt.Errorf("%w: %v", ErrInvalidAuthorizationHeader, err)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return ctx, err
	}

	log := logger.FromContext(ctx).WithStr("account_id", token.AccountID)
	ctx = log.WithContext(ctx)

	return context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID), nil
}
