package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cast"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/syncing"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
	"github.com/vfg2006/ledger-integrations-api/pkg/middleware"
)

type authIntegrationRequest struct {
	BusinessID string            `json:"businessId"`
	Params     domain.AuthParams `json:"params"`
}

type syncInvoicesRequest struct {
	BusinessID string         `json:"businessId"`
	Query      map[string]any `json:"query"`
}

// AuthenticateIntegration troca os parâmetros do provedor por credenciais e grava a conexão do negócio
func AuthenticateIntegration(orchestrator integrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - AuthenticateIntegration")

		source, err := sourceFromPath(r)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		var req authIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		if _, err := assertOwnership(r, orchestrator, req.BusinessID); err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		response, err := orchestrator.Authenticate(r.Context(), source, req.BusinessID, req.Params)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		apiErrors.WriteSuccess(w, http.StatusOK, map[string]any{
			"source":   source,
			"business": response.Business,
			"meta":     response.Meta,
		})
	})
}

// SyncIntegrationInvoices executa uma passada de sincronização de faturas do provedor
func SyncIntegrationInvoices(orchestrator integrating.Orchestrator, syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - SyncIntegrationInvoices")

		source, err := sourceFromPath(r)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		var req syncInvoicesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		query, err := cast.ToStringMapStringE(req.Query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Query de sincronização inválida", err.Error())
			return
		}

		if _, err := assertOwnership(r, orchestrator, req.BusinessID); err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		result, err := syncer.SyncInvoices(r.Context(), source, req.BusinessID, domain.SyncQuery(query))
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		apiErrors.WriteSuccess(w, http.StatusOK, map[string]any{
			"source":  source,
			"created": result.Created,
			"updated": result.Updated,
			"total":   result.Total,
			"failed":  result.Failed,
		})
	})
}

// GetIntegrationConnection devolve o status da conexão sem credenciais
func GetIntegrationConnection(orchestrator integrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		source, err := sourceFromPath(r)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		businessID := r.URL.Query().Get("businessId")
		if _, err := assertOwnership(r, orchestrator, businessID); err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		connection, err := orchestrator.ConnectionStatus(r.Context(), businessID, source)
		if err != nil {
			writeIntegrationError(w, r, err)
			return
		}

		apiErrors.WriteSuccess(w, http.StatusOK, map[string]any{
			"source":     source,
			"connection": connection,
		})
	})
}

func sourceFromPath(r *http.Request) (domain.Source, error) {
	return domain.ParseSource(httprouter.ParamsFromContext(r.Context()).ByName("source"))
}

func assertOwnership(r *http.Request, orchestrator integrating.Orchestrator, businessID string) (*domain.Business, error) {
	var userID domain.UserID
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		userID = claims.UserID
	}
	return orchestrator.AssertOwnership(r.Context(), businessID, userID)
}
