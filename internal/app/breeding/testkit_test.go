package breeding

import (
	"context"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubUserRepo struct {
	users map[string]player.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]player.User)}
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (player.User, error) {
	u, ok := r.users[id]
	if !ok {
		return player.User{}, ports.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (player.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return player.User{}, ports.ErrNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (player.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return player.User{}, ports.ErrNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u player.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SaveWithVersion(_ context.Context, u player.User, expected int64) error {
	cur, ok := r.users[u.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if cur.Version != expected {
		return ports.ErrConflict
	}
	r.users[u.ID] = u
	return nil
}

type stubCatRepo struct {
	cats map[string]cattery.Cat
}

func newStubCatRepo() *stubCatRepo {
	return &stubCatRepo{cats: make(map[string]cattery.Cat)}
}

func (r *stubCatRepo) GetByID(_ context.Context, id string) (cattery.Cat, error) {
	c, ok := r.cats[id]
	if !ok {
		return cattery.Cat{}, ports.ErrNotFound
	}
	return c, nil
}

func (r *stubCatRepo) ListByOwnerID(_ context.Context, ownerID string) ([]cattery.Cat, error) {
	var out []cattery.Cat
	for _, c := range r.cats {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCatRepo) Create(_ context.Context, c cattery.Cat) error {
	r.cats[c.ID] = c
	return nil
}

func (r *stubCatRepo) SaveWithVersion(_ context.Context, c cattery.Cat, expected int64) error {
	cur, ok := r.cats[c.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if cur.Version != expected {
		return ports.ErrConflict
	}
	r.cats[c.ID] = c
	return nil
}

type stubEventRepo struct {
	records []ports.EventRecord
}

func (r *stubEventRepo) Append(_ context.Context, rec ports.EventRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *stubEventRepo) ListRecent(_ context.Context, actorID string, limit int) ([]ports.EventRecord, error) {
	var out []ports.EventRecord
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].ActorID == actorID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}
