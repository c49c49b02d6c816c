package syncing

import (
	"context"
	"sync"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

// MemoryLocker é o lock em processo usado quando não há Redis configurado
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: map[string]struct{}{}}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, domain.ErrSyncInProgress
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
		return nil
	}, nil
}

// LockKey identifica a sincronização de um provedor para um negócio
func LockKey(businessID string, source domain.Source) string {
	return "sync:" + businessID + ":" + string(source)
}
