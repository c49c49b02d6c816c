package siigoclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/metrics"
	"github.com/vfg2006/ledger-integrations-api/pkg/retry"
)

// filtros aceitos pelo endpoint de faturas; o resto da query do chamador é descartado
var forwardedQueryKeys = []string{"from", "to", "page", "page_size"}

func (c *SiigoClient) GetInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/invoices")

	values := endpoint.Query()
	for _, key := range forwardedQueryKeys {
		if v := query[key]; v != "" {
			values.Set(key, v)
		}
	}
	endpoint.RawQuery = values.Encode()

	return retry.Do(ctx, c.retry, "siigo.get_invoices", func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}
		for k, v := range header {
			req.Header[k] = append([]string(nil), v...)
		}
		if req.Header.Get("Partner-Id") == "" && c.partnerID != "" {
			req.Header.Set("Partner-Id", c.partnerID)
		}

		start := time.Now()
		body, err := integrator.Do(c.httpClient, req, domain.SourceSiigo, domain.ErrUpstreamFetch)
		metrics.ObserveProviderCall(string(domain.SourceSiigo), "get_invoices", err, time.Since(start))

		return body, err
	})
}
