package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

const pingTimeout = 5 * time.Second

// NewClient abre a conexão a partir de REDIS_URL e valida com PING
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis ping failed")
	}

	log.L.WithField("addr", opts.Addr).Info("Conectado ao Redis")
	return client, nil
}
