package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/mock"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/models"
)

const (
	testAccount = "acc-1"
	testToken   = "valid-token"
)

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

type handlerFixture struct {
	handler *Handler
	router  http.Handler
	records *mock.MockRecordStoreService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	hub     *service.NotificationHub

	// tokens maps bearer tokens to the account they authenticate
	tokens map[string]string
}

// newHandlerFixture wires a Handler over gomock services. testToken parses
// to testAccount, which is available; unknown tokens are rejected.
func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		records: mock.NewMockRecordStoreService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		hub:     service.NewNotificationHub(logger.Nop()),
	}
	t.Cleanup(f.hub.Close)

	f.tokens = map[string]string{testToken: testAccount}
	f.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string) (models.Token, error) {
			id, ok := f.tokens[token]
			if !ok {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{AccountID: id}, nil
		}).AnyTimes()
	f.auth.EXPECT().AccountStatus(gomock.Any(), testAccount).
		Return(models.AccountStatusAvailable).AnyTimes()
	f.auth.EXPECT().AccountStatus(gomock.Any(), "").
		Return(models.AccountStatusNoAccount).AnyTimes()

	f.handler = NewHandler(&service.Services{
		AuthService:         f.auth,
		RecordStoreService:  f.records,
		AppInfoService:      f.appInfo,
		NotificationService: f.hub,
	}, logger.Nop())
	f.router = f.handler.Init()

	return f
}

func (f *handlerFixture) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeRemoteError(t *testing.T, rec *httptest.ResponseRecorder) models.RemoteError {
	t.Helper()
	var remoteErr models.RemoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &remoteErr), rec.Body.String())
	return remoteErr
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, defaultPingInterval, h.pingInterval)
	assert.NotSame(t, h, NewHandler(svc, log))
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_VersionIsPublic(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{Version: "1.2.3", MaxBatchSize: 400})

	rec := f.do(http.MethodGet, "/api/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","max_batch_size":400}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestInit_ZoneRoutesRequireAuth(t *testing.T) {
	f := newHandlerFixture(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/zones"},
		{http.MethodGet, "/api/zones/Bookmark"},
		{http.MethodDelete, "/api/zones/Bookmark"},
		{http.MethodPut, "/api/zones/Bookmark/subscriptions"},
		{http.MethodGet, "/api/zones/Bookmark/subscriptions/Bookmark.subscription"},
		{http.MethodPost, "/api/zones/Bookmark/records/modify"},
		{http.MethodGet, "/api/zones/Bookmark/changes"},
		{http.MethodGet, "/api/notifications"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := f.do(rt.method, rt.path, "", false)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, models.ErrorCodeNotAuthenticated, decodeRemoteError(t, rec).Code)
		})
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/version"},
		{http.MethodPatch, "/api/zones"},
		{http.MethodPost, "/api/account"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := f.do(tt.method, tt.path, "", true)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/nothing-here", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{Version: "v"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
