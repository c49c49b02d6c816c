package alegraclient

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

// GetInvoices busca uma página de faturas. Os filtros do chamador (start, limit, date_afterOrNow...)
// são repassados sem alteração.
func (c *AlegraClient) GetInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "invoices")

	values := endpoint.Query()
	for k, v := range query {
		if v != "" {
			values.Set(k, v)
		}
	}
	endpoint.RawQuery = values.Encode()

	return retry.Do(ctx, c.retry, "alegra.get_invoices", func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}
		for k, v := range header {
			req.Header[k] = append([]string(nil), v...)
		}

		start := time.Now()
		body, err := integrator.Do(c.httpClient, req, domain.SourceAlegra, domain.ErrUpstreamFetch)
		metrics.ObserveProviderCall(string(domain.SourceAlegra), "get_invoices", err, time.Since(start))

		return body, err
	})
}
