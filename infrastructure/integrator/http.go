package integrator

import (
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// corpo de erro guardado para diagnóstico é truncado
const maxErrorBody = 4 << 10

// NewHTTPClient cria o client usado nas chamadas aos provedores, com timeout e transporte instrumentado
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Do executa a requisição e devolve o corpo. Falha de transporte ou status fora de 2xx
// vira *domain.UpstreamError do tipo kind, preservando status e corpo.
func Do(client *http.Client, req *http.Request, source domain.Source, kind error) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Kind: kind, Source: source, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Kind: kind, Source: source, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &domain.UpstreamError{
			Kind:       kind,
			Source:     source,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
