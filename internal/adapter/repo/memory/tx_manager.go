package memory

import "context"

// TxManager gives a transaction exclusive access to the store: it takes the
// write lock up front and marks the context so repository calls inside the
// transaction skip their own locking.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(withTx(ctx))
}
