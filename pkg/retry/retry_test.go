package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func upstream(status int) error {
	return &domain.UpstreamError{Kind: domain.ErrUpstreamFetch, Source: domain.SourceAlegra, StatusCode: status}
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	calls := 0

	got, err := Do(context.Background(), fastPolicy(3), "fetch", func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", upstream(http.StatusServiceUnavailable)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsAtMaxAttempts(t *testing.T) {
	calls := 0

	_, err := Do(context.Background(), fastPolicy(3), "fetch", func(ctx context.Context) (int, error) {
		calls++
		return 0, upstream(http.StatusTooManyRequests)
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamFetch))
	assert.Equal(t, 3, calls)
}

func TestDo_DoesNotRetryClientErrors(t *testing.T) {
	calls := 0

	_, err := Do(context.Background(), fastPolicy(3), "fetch", func(ctx context.Context) (int, error) {
		calls++
		return 0, upstream(http.StatusUnauthorized)
	})

	require.Error(t, err)
	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestIsRetryable(t *testing.T) {
	transport := &domain.UpstreamError{Kind: domain.ErrUpstreamFetch, Err: errors.New("connection reset")}

	assert.True(t, IsRetryable(transport))
	assert.True(t, IsRetryable(upstream(http.StatusBadGateway)))
	assert.False(t, IsRetryable(upstream(http.StatusNotFound)))
	assert.False(t, IsRetryable(errors.New("qualquer")))
	assert.False(t, IsRetryable(context.Canceled))
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.Provider{RetryMaxAttempts: 5})

	assert.Equal(t, 5, p.MaxAttempts)
	assert.Equal(t, DefaultPolicy().InitialInterval, p.InitialInterval)
	assert.Equal(t, DefaultPolicy().MaxInterval, p.MaxInterval)
}
