package siigoclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	siigodomain "github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/retry"
)

type Client interface {
	Login(ctx context.Context, username, accessKey string) (*siigodomain.LoginResponse, error)
	GetInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error)
}

type SiigoClient struct {
	httpClient *http.Client
	baseURL    string
	authURL    string
	partnerID  string
	retry      retry.Policy
}

func NewClient(cfg *config.Config) Client {
	return &SiigoClient{
		httpClient: integrator.NewHTTPClient(cfg.Provider.Timeout),
		baseURL:    cfg.Siigo.BaseURL,
		authURL:    cfg.Siigo.AuthURL,
		partnerID:  cfg.Siigo.PartnerID,
		retry:      retry.PolicyFromConfig(cfg.Provider),
	}
}
