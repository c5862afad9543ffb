package memory

import (
	"context"

	"meowtopia/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, record ports.EventRecord) error {
	defer r.store.acquireWrite(ctx)()
	r.store.events = append(r.store.events, record)
	return nil
}

// ListRecent walks the log backwards so the newest records come first.
func (r EventRepo) ListRecent(ctx context.Context, actorID string, limit int) ([]ports.EventRecord, error) {
	defer r.store.acquireRead(ctx)()
	out := make([]ports.EventRecord, 0, limit)
	for i := len(r.store.events) - 1; i >= 0 && len(out) < limit; i-- {
		if r.store.events[i].ActorID == actorID {
			out = append(out, r.store.events[i])
		}
	}
	return out, nil
}
