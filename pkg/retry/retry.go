package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

// Policy define quantas vezes e com qual espaçamento uma chamada ao provedor é repetida
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

func PolicyFromConfig(cfg config.Provider) Policy {
	p := DefaultPolicy()
	if cfg.RetryMaxAttempts > 0 {
		p.MaxAttempts = cfg.RetryMaxAttempts
	}
	if cfg.RetryInitialInterval > 0 {
		p.InitialInterval = cfg.RetryInitialInterval
	}
	if cfg.RetryMaxInterval > 0 {
		p.MaxInterval = cfg.RetryMaxInterval
	}
	return p
}

// Do executa fn com backoff exponencial. Só repete erros considerados transitórios:
// falhas de transporte, 5xx e 429. Qualquer outro erro encerra na primeira tentativa.
func Do[T any](ctx context.Context, p Policy, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	logger := log.ForContext(ctx).WithField("operation", operation)

	result, err := backoff.Retry(ctx, func() (T, error) {
		res, err := fn(ctx)
		if err != nil && !IsRetryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.WithError(err).Warnf("Falha transitória, nova tentativa em %s", next)
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}

	return result, err
}

// IsRetryable informa se o erro vale uma nova tentativa
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Retryable()
	}

	return false
}
