package alegra

import (
	"context"
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/alegra/alegraclient"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

// Integrator expõe o Alegra para o pipeline de sincronização
type Integrator struct {
	Client alegraclient.Client
}

func New(client alegraclient.Client) *Integrator {
	return &Integrator{
		Client: client,
	}
}

func (i *Integrator) Source() domain.Source {
	return domain.SourceAlegra
}

func (i *Integrator) FetchInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error) {
	return i.Client.GetInvoices(ctx, header, query)
}

func (i *Integrator) Normalize(raw map[string]any, businessID string) (*domain.UnifiedInvoice, error) {
	return Normalize(raw, businessID)
}
