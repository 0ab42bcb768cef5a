// Package memory provides in-process adapters used by tests and by the
// server's no-database fallback mode. The TxManager holds the write lock for
// the duration of a transaction; repository calls outside a transaction take
// the read lock themselves, so the scheduler goroutine and HTTP readers can
// run concurrently.
package memory

import (
	"context"
	"sync"

	"kappaverse/internal/domain/kappa"
)

type Store struct {
	mu     sync.RWMutex
	states map[string]kappa.CoreState
	events map[string][]kappa.DomainEvent
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]kappa.CoreState),
		events: make(map[string][]kappa.DomainEvent),
	}
}

// SeedState installs a player state directly, bypassing version checks.
func (s *Store) SeedState(state kappa.CoreState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.PlayerID] = state
}

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

// inTx reports whether ctx already runs under the TxManager's write lock.
// Repositories must not lock again in that case; sync.RWMutex does not nest.
func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey).(bool)
	return held
}
