package memory

import (
	"context"

	"kappaverse/internal/domain/kappa"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []kappa.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

// ListByPlayerID returns events newest first, matching the SQL adapter's
// ordering.
func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]kappa.DomainEvent, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	stored := r.store.events[playerID]
	out := make([]kappa.DomainEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
