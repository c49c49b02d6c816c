package syncing

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

// InvoiceProvider busca a página bruta de faturas e normaliza cada registro
type InvoiceProvider interface {
	Source() domain.Source
	FetchInvoices(ctx context.Context, header http.Header, query domain.SyncQuery) ([]byte, error)
	Normalize(raw map[string]any, businessID string) (*domain.UnifiedInvoice, error)
}

// ConnectionProvider é a parte do orquestrador de autenticação usada pela sincronização
type ConnectionProvider interface {
	GetActiveConnection(ctx context.Context, businessID string, source domain.Source) (*domain.Connection, error)
	BuildAuthHeaders(source domain.Source, credentials domain.Credentials) (http.Header, error)
	MarkSynced(ctx context.Context, businessID string, source domain.Source, at time.Time) error
}

// Locker garante uma única sincronização por (negócio, provedor).
// Acquire devolve domain.ErrSyncInProgress quando a chave já está em uso.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}

type Syncer interface {
	SyncInvoices(ctx context.Context, source domain.Source, businessID string, query domain.SyncQuery) (*domain.SyncResult, error)
}
