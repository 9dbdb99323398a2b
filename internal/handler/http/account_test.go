package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-record-sync/models"
)

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		want       models.AccountInfo
	}{
		{
			name:       "authenticated",
			authHeader: "Bearer " + testToken,
			wantStatus: http.StatusOK,
			want:       models.AccountInfo{AccountID: testAccount, Status: models.AccountStatusAvailable},
		},
		{
			name:       "anonymous",
			wantStatus: http.StatusOK,
			want:       models.AccountInfo{Status: models.AccountStatusNoAccount},
		},
		{
			name:       "invalid token",
			authHeader: "Bearer forged",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			req := newRequest(http.MethodGet, "/api/account", tt.authHeader)
			rec := serve(f.router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, models.ErrorCodeNotAuthenticated, decodeRemoteError(t, rec).Code)
				return
			}
			var got models.AccountInfo
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
