package ports

import (
	"context"
	"time"

	"meowtopia/internal/domain/cafe"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (player.User, error)
	GetByEmail(ctx context.Context, email string) (player.User, error)
	GetByUsername(ctx context.Context, username string) (player.User, error)
	Create(ctx context.Context, user player.User) error
	// SaveWithVersion persists the aggregate only when the stored
	// version matches expectedVersion, returning ErrConflict otherwise.
	SaveWithVersion(ctx context.Context, user player.User, expectedVersion int64) error
}

type CatRepository interface {
	GetByID(ctx context.Context, id string) (cattery.Cat, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]cattery.Cat, error)
	Create(ctx context.Context, cat cattery.Cat) error
	SaveWithVersion(ctx context.Context, cat cattery.Cat, expectedVersion int64) error
}

type ItemRepository interface {
	GetByID(ctx context.Context, id string) (cafe.CafeItem, error)
	List(ctx context.Context) ([]cafe.CafeItem, error)
	Create(ctx context.Context, item cafe.CafeItem) error
	Save(ctx context.Context, item cafe.CafeItem) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (cafe.Order, error)
	List(ctx context.Context) ([]cafe.Order, error)
	Create(ctx context.Context, order cafe.Order) error
	Save(ctx context.Context, order cafe.Order) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (cafe.Customer, error)
	List(ctx context.Context) ([]cafe.Customer, error)
	Create(ctx context.Context, customer cafe.Customer) error
	Save(ctx context.Context, customer cafe.Customer) error
}

type StaffRepository interface {
	List(ctx context.Context) ([]cafe.Staff, error)
	Create(ctx context.Context, staff cafe.Staff) error
}

type SettingsRepository interface {
	// Get returns ErrNotFound when nothing has been stored yet; callers
	// fall back to the domain defaults.
	Get(ctx context.Context) (cafe.Settings, error)
	Save(ctx context.Context, settings cafe.Settings) error
}

// EventRecord is one entry in the append-only activity feed: who did
// what, when, with a free-form payload.
type EventRecord struct {
	ActorID    string         `json:"actor_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type EventRepository interface {
	Append(ctx context.Context, record EventRecord) error
	ListRecent(ctx context.Context, actorID string, limit int) ([]EventRecord, error)
}
