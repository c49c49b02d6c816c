package siigoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func TestGetInvoices_ForwardsOnlyKnownFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invoices", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Empty(t, r.URL.Query().Get("ignored"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "partner-1", r.Header.Get("Partner-Id"))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		Siigo:    config.Siigo{BaseURL: server.URL, PartnerID: "partner-1"},
		Provider: config.Provider{Timeout: time.Second, RetryMaxAttempts: 1},
	})

	header := http.Header{}
	header.Set("Authorization", "Bearer tok")

	body, err := client.GetInvoices(context.Background(), header, domain.SyncQuery{"from": "2024-01-01", "page": "2", "ignored": "x"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(body))
}
