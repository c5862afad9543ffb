package memory

import (
	"context"
	"sort"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

type UserRepo struct {
	store *Store
}

func NewUserRepo(store *Store) UserRepo {
	return UserRepo{store: store}
}

func (r UserRepo) GetByID(ctx context.Context, id string) (player.User, error) {
	defer r.store.acquireRead(ctx)()
	u, ok := r.store.users[id]
	if !ok {
		return player.User{}, ports.ErrNotFound
	}
	return u, nil
}

func (r UserRepo) GetByEmail(ctx context.Context, email string) (player.User, error) {
	defer r.store.acquireRead(ctx)()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return player.User{}, ports.ErrNotFound
}

func (r UserRepo) GetByUsername(ctx context.Context, username string) (player.User, error) {
	defer r.store.acquireRead(ctx)()
	for _, u := range r.store.users {
		if u.Username == username {
			return u, nil
		}
	}
	return player.User{}, ports.ErrNotFound
}

func (r UserRepo) Create(ctx context.Context, u player.User) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.users[u.ID]; ok {
		return ports.ErrConflict
	}
	r.store.users[u.ID] = u
	return nil
}

func (r UserRepo) SaveWithVersion(ctx context.Context, u player.User, expectedVersion int64) error {
	defer r.store.acquireWrite(ctx)()
	current, ok := r.store.users[u.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.users[u.ID] = u
	return nil
}

type CatRepo struct {
	store *Store
}

func NewCatRepo(store *Store) CatRepo {
	return CatRepo{store: store}
}

func (r CatRepo) GetByID(ctx context.Context, id string) (cattery.Cat, error) {
	defer r.store.acquireRead(ctx)()
	c, ok := r.store.cats[id]
	if !ok {
		return cattery.Cat{}, ports.ErrNotFound
	}
	return c, nil
}

// ListByOwnerID returns the owner's cats ordered by creation time, then
// id, so repeated listings are stable.
func (r CatRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]cattery.Cat, error) {
	defer r.store.acquireRead(ctx)()
	out := make([]cattery.Cat, 0)
	for _, c := range r.store.cats {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r CatRepo) Create(ctx context.Context, c cattery.Cat) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.cats[c.ID]; ok {
		return ports.ErrConflict
	}
	r.store.cats[c.ID] = c
	return nil
}

func (r CatRepo) SaveWithVersion(ctx context.Context, c cattery.Cat, expectedVersion int64) error {
	defer r.store.acquireWrite(ctx)()
	current, ok := r.store.cats[c.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.cats[c.ID] = c
	return nil
}
