package memory

import (
	"context"
	"sync"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

// Store is the single backing map set shared by all in-memory repos.
// Every repo method locks through acquireRead/acquireWrite; inside a
// transaction the TxManager already holds the write lock and the
// context marker makes those calls no-ops.
type Store struct {
	mu sync.RWMutex

	users map[string]player.User
	cats  map[string]cattery.Cat

	items     map[string]cafe.CafeItem
	itemSeq   []string
	orders    map[string]cafe.Order
	orderSeq  []string
	customers map[string]cafe.Customer
	custSeq   []string
	staff     []cafe.Staff

	settings *cafe.Settings
	events   []ports.EventRecord
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]player.User),
		cats:      make(map[string]cattery.Cat),
		items:     make(map[string]cafe.CafeItem),
		orders:    make(map[string]cafe.Order),
		customers: make(map[string]cafe.Customer),
	}
}

type txMarker struct{}

// acquireRead takes the read lock unless ctx already runs under the
// TxManager. Returns the matching unlock.
func (s *Store) acquireRead(ctx context.Context) func() {
	if ctx.Value(txMarker{}) != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// acquireWrite is acquireRead's write-side counterpart, for repo
// mutations issued outside a transaction.
func (s *Store) acquireWrite(ctx context.Context) func() {
	if ctx.Value(txMarker{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// SeedUser installs an account directly, bypassing registration.
func (s *Store) SeedUser(u player.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// SeedCat installs a cat directly.
func (s *Store) SeedCat(c cattery.Cat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cats[c.ID] = c
}
