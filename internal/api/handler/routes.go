package handler

import (
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/internal/api/handler/router"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/syncing"
	"github.com/vfg2006/ledger-integrations-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Integrations(orchestrator integrating.Orchestrator, syncer syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/integrations/:source/auth",
			Method:      http.MethodPost,
			Handler:     AuthenticateIntegration(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/integrations/:source/invoices/sync",
			Method:      http.MethodPost,
			Handler:     SyncIntegrationInvoices(orchestrator, syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/integrations/:source/connection",
			Method:      http.MethodGet,
			Handler:     GetIntegrationConnection(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Invoices(orchestrator integrating.Orchestrator, invoices InvoiceReader) []router.Route {
	return []router.Route{
		{
			Path:        "/businesses/:id/invoices",
			Method:      http.MethodGet,
			Handler:     ListBusinessInvoices(orchestrator, invoices),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
