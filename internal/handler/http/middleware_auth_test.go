package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// ---- Helpers ----

func newRequest(method, path, authHeader string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// captureAccount records the account id the middleware put into the context.
func captureAccount(got *string, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*got, _ = utils.GetAccountIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ---- auth ----

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantAccount string
	}{
		{"valid token", "Bearer " + testToken, http.StatusOK, testAccount},
		{"lowercase scheme", "bearer " + testToken, http.StatusOK, testAccount},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token " + testToken, http.StatusUnauthorized, ""},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			var got string
			var called bool
			rec := serve(f.handler.auth(captureAccount(&got, &called)), newRequest(http.MethodGet, "/test", tt.authHeader))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			assert.Equal(t, tt.wantAccount, got)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, models.ErrorCodeNotAuthenticated, decodeRemoteError(t, rec).Code)
			}
		})
	}
}

func TestAuth_RestrictedAccount(t *testing.T) {
	f := newHandlerFixture(t)
	f.tokens["restricted-token"] = "blocked"
	f.auth.EXPECT().AccountStatus(gomock.Any(), "blocked").
		Return(models.AccountStatusRestricted)

	var got string
	var called bool
	rec := serve(f.handler.auth(captureAccount(&got, &called)), newRequest(http.MethodGet, "/test", "Bearer restricted-token"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, models.ErrorCodeNotAuthenticated, decodeRemoteError(t, rec).Code)
}

// ---- optionalAuth ----

func TestOptionalAuth(t *testing.T) {
	f := newHandlerFixture(t)

	var got string
	var called bool
	next := captureAccount(&got, &called)

	rec := serve(f.handler.optionalAuth(next), newRequest(http.MethodGet, "/test", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Empty(t, got)

	called = false
	rec = serve(f.handler.optionalAuth(next), newRequest(http.MethodGet, "/test", "Bearer "+testToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, testAccount, got)

	called = false
	rec = serve(f.handler.optionalAuth(next), newRequest(http.MethodGet, "/test", "Bearer forged"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
