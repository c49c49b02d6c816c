package siigo

import (
	"context"
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/siigoclient"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

// Integrator expõe o Siigo para o pipeline de sincronização
type Integrator struct {
	Client siigoclient.Client
}

func New(client siigoclient.Client) *Integrator {
	return &Integrator{
		Client: client,
	}
}

func (i *Integrator) Source() domain.Source {
	return domain.SourceSiigo
}

func (i *Integrator) FetchInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error) {
	return i.Client.GetInvoices(ctx, header, query)
}

func (i *Integrator) Normalize(raw map[string]any, businessID string) (*domain.UnifiedInvoice, error) {
	return Normalize(raw, businessID)
}
