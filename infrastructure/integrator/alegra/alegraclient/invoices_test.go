package alegraclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Alegra: config.Alegra{BaseURL: baseURL},
		Provider: config.Provider{
			Timeout:              time.Second,
			RetryMaxAttempts:     3,
			RetryInitialInterval: time.Millisecond,
			RetryMaxInterval:     2 * time.Millisecond,
		},
	})
}

func TestGetInvoices_ForwardsHeadersAndQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/invoices", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		assert.Equal(t, "30", r.URL.Query().Get("limit"))
		assert.Equal(t, "Basic abc", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"1"}]`))
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Authorization", "Basic abc")

	body, err := newTestClient(server.URL+"/api/v1").GetInvoices(context.Background(), header, domain.SyncQuery{"start": "0", "limit": "30"})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(body))
}

func TestGetInvoices_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL).GetInvoices(context.Background(), http.Header{}, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetInvoices_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetInvoices(context.Background(), http.Header{}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamFetch))
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
