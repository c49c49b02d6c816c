package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSyncRecords(t *testing.T) {
	before := testutil.ToFloat64(syncRecords.WithLabelValues("alegra", "created"))

	ObserveSyncRecords("alegra", "created", 2)
	ObserveSyncRecords("alegra", "created", 0)

	assert.Equal(t, before+2, testutil.ToFloat64(syncRecords.WithLabelValues("alegra", "created")))
}

func TestObserveProviderCall(t *testing.T) {
	before := testutil.ToFloat64(providerCalls.WithLabelValues("siigo", "login", "error"))

	ObserveProviderCall("siigo", "login", errors.New("boom"), time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(providerCalls.WithLabelValues("siigo", "login", "error")))
}

func TestHTTPMiddleware_RecordsStatus(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "418"))

	h := HTTPMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "418")))
}
