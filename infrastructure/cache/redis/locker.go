package redis

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

const keyPrefix = "ledger:"

// Locker implementa o lock de sincronização compartilhado entre instâncias
type Locker struct {
	client *redislock.Client
	ttl    time.Duration
}

func NewLocker(client *goredis.Client, ttl time.Duration) *Locker {
	return &Locker{
		client: redislock.New(client),
		ttl:    ttl,
	}
}

// Acquire não espera: se a chave já tem dono devolve domain.ErrSyncInProgress
func (l *Locker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, keyPrefix+key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrSyncInProgress
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error obtaining lock %s", key)
	}

	return func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			return nil
		}
		return err
	}, nil
}
