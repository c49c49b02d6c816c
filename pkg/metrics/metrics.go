package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	providerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_provider_calls_total",
		Help: "Outbound provider calls by source, operation and result",
	}, []string{"source", "operation", "result"})

	providerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_provider_call_duration_seconds",
		Help:    "Duration of outbound provider calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"source", "operation"})

	syncRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_sync_records_total",
		Help: "Invoice records processed by sync, by source and outcome",
	}, []string{"source", "outcome"})

	syncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_sync_runs_total",
		Help: "Sync runs by source and result",
	}, []string{"source", "result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, code).Inc()
	httpRequestDuration.WithLabelValues(method, code).Observe(duration.Seconds())
}

// ObserveProviderCall records one outbound call; result is "ok" or "error".
func ObserveProviderCall(source, operation string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	providerCalls.WithLabelValues(source, operation, result).Inc()
	providerCallDuration.WithLabelValues(source, operation).Observe(duration.Seconds())
}

// ObserveSyncRecords adds count to the outcome bucket (created, updated, failed).
func ObserveSyncRecords(source, outcome string, count int) {
	if count <= 0 {
		return
	}
	syncRecords.WithLabelValues(source, outcome).Add(float64(count))
}

func ObserveSyncRun(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	syncRuns.WithLabelValues(source, result).Inc()
}

// HTTPMiddleware mede cada requisição atendida pelo router
func HTTPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			ObserveHTTPRequest(r.Method, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
