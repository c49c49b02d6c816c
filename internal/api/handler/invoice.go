package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cast"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
)

// InvoiceReader é a leitura de faturas unificadas usada pelos relatórios
type InvoiceReader interface {
	ListByBusiness(ctx context.Context, businessID string, filter domain.InvoiceFilter) ([]*domain.UnifiedInvoice, error)
}

// ListBusinessInvoices lista as faturas unificadas do negócio, com filtros opcionais source e status
func ListBusinessInvoices(orchestrator integrating.Orchestrator, invoices InvoiceReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filter, err := invoiceFilterFromQuery(r)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		if _, err := assertOwnership(r, orchestrator, businessID); err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		list, err := invoices.ListByBusiness(r.Context(), businessID, filter)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar faturas", err.Error())
			return
		}

		if list == nil {
			list = []*domain.UnifiedInvoice{}
		}

		apiErrors.WriteSuccess(w, http.StatusOK, map[string]any{
			"invoices": list,
			"count":    len(list),
		})
	})
}

func invoiceFilterFromQuery(r *http.Request) (domain.InvoiceFilter, error) {
	q := r.URL.Query()
	filter := domain.InvoiceFilter{}

	if raw := q.Get("source"); raw != "" {
		source, err := domain.ParseSource(raw)
		if err != nil {
			return filter, err
		}
		filter.Source = &source
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.ParseInvoiceStatus(raw)
		filter.Status = &status
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := cast.ToUint64E(raw)
		if err != nil {
			return filter, domain.NewValidationError("", "limit must be a positive integer", "limit")
		}
		filter.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := cast.ToUint64E(raw)
		if err != nil {
			return filter, domain.NewValidationError("", "offset must be a positive integer", "offset")
		}
		filter.Offset = offset
	}

	return filter, nil
}
