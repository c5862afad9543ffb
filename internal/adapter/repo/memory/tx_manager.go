package memory

import "context"

// TxManager serializes transactions by holding the store write lock for
// the duration of fn. The context marker tells the repos the lock is
// already held. No rollback: use cases validate before they mutate.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(context.WithValue(ctx, txMarker{}, struct{}{}))
}
