package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ledger-integrations-api/internal/scheduler"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInvoiceSync = "invoice-sync"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	InvoiceSyncService *scheduler.InvoiceSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeInvoiceSync:
			if services.InvoiceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de faturas não disponível", nil)
				return
			}
			if !services.InvoiceSyncService.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de faturas já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: invoice-sync", nil)
			return
		}

		apiErrors.WriteSuccess(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.InvoiceSyncService != nil {
			status[CronJobTypeInvoiceSync] = services.InvoiceSyncService.GetStatus()
		}

		apiErrors.WriteSuccess(w, http.StatusOK, map[string]any{"status": status})
	})
}
