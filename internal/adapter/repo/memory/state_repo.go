package memory

import (
	"context"
	"sort"

	"kappaverse/internal/app/ports"
	"kappaverse/internal/domain/kappa"
)

type PlayerStateRepo struct {
	store *Store
}

func NewPlayerStateRepo(store *Store) PlayerStateRepo {
	return PlayerStateRepo{store: store}
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (kappa.CoreState, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	state, ok := r.store.states[playerID]
	if !ok {
		return kappa.CoreState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r PlayerStateRepo) SaveWithVersion(ctx context.Context, state kappa.CoreState, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, ok := r.store.states[state.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.states[state.PlayerID] = state
		return nil
	}
	if expectedVersion == 0 || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.states[state.PlayerID] = state
	return nil
}

func (r PlayerStateRepo) ListPlayerIDs(ctx context.Context) ([]string, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	ids := make([]string, 0, len(r.store.states))
	for id := range r.store.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
