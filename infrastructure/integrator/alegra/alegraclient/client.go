package alegraclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/retry"
)

type Client interface {
	GetInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error)
}

type AlegraClient struct {
	httpClient *http.Client
	baseURL    string
	retry      retry.Policy
}

func NewClient(cfg *config.Config) Client {
	return &AlegraClient{
		httpClient: integrator.NewHTTPClient(cfg.Provider.Timeout),
		baseURL:    cfg.Alegra.BaseURL,
		retry:      retry.PolicyFromConfig(cfg.Provider),
	}
}
