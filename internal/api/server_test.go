package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/authenticating"
	integratingmocks "github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating/mocks"
	syncmocks "github.com/vfg2006/ledger-integrations-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) (*Server, authenticating.Authenticator, *integratingmocks.MockOrchestrator) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	authenticator, err := authenticating.NewService(config.Auth{Secret: "test-secret"})
	require.NoError(t, err)

	orchestrator := integratingmocks.NewMockOrchestrator(ctrl)
	srv, err := New(cfg, authenticator, orchestrator, syncmocks.NewMockSyncer(ctrl), mocks.NewMockInvoiceRepository(ctrl), nil)
	require.NoError(t, err)

	return srv, authenticator, orchestrator
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"), path)
	}
}

func TestServer_RequiresBearerToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/integrations/alegra/connection?businessId=biz-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AuthenticatedRequest(t *testing.T) {
	srv, authenticator, orchestrator := newTestServer(t)

	token, err := authenticator.IssueToken("user-1", domain.RoleClient, time.Hour)
	require.NoError(t, err)

	orchestrator.EXPECT().AssertOwnership(gomock.Any(), "biz-1", domain.UserID("user-1")).Return(&domain.Business{ID: "biz-1"}, nil)
	orchestrator.EXPECT().ConnectionStatus(gomock.Any(), "biz-1", domain.SourceAlegra).
		Return(&domain.ConnectionView{Source: domain.SourceAlegra, IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/integrations/alegra/connection?businessId=biz-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnmatchedRoutesUseErrorEnvelope(t *testing.T) {
	srv, authenticator, _ := newTestServer(t)

	token, err := authenticator.IssueToken("user-1", domain.RoleClient, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "wrong method", method: http.MethodGet, path: "/integrations/alegra/auth", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/integrations/alegra/unknown", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
