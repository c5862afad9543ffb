package memory

import (
	"context"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

type ItemRepo struct {
	store *Store
}

func NewItemRepo(store *Store) ItemRepo {
	return ItemRepo{store: store}
}

func (r ItemRepo) GetByID(ctx context.Context, id string) (cafe.CafeItem, error) {
	defer r.store.acquireRead(ctx)()
	it, ok := r.store.items[id]
	if !ok {
		return cafe.CafeItem{}, ports.ErrNotFound
	}
	return it, nil
}

// List returns items in insertion order.
func (r ItemRepo) List(ctx context.Context) ([]cafe.CafeItem, error) {
	defer r.store.acquireRead(ctx)()
	out := make([]cafe.CafeItem, 0, len(r.store.itemSeq))
	for _, id := range r.store.itemSeq {
		out = append(out, r.store.items[id])
	}
	return out, nil
}

func (r ItemRepo) Create(ctx context.Context, item cafe.CafeItem) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.items[item.ID]; ok {
		return ports.ErrConflict
	}
	r.store.items[item.ID] = item
	r.store.itemSeq = append(r.store.itemSeq, item.ID)
	return nil
}

func (r ItemRepo) Save(ctx context.Context, item cafe.CafeItem) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.items[item.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.items[item.ID] = item
	return nil
}

type OrderRepo struct {
	store *Store
}

func NewOrderRepo(store *Store) OrderRepo {
	return OrderRepo{store: store}
}

func (r OrderRepo) GetByID(ctx context.Context, id string) (cafe.Order, error) {
	defer r.store.acquireRead(ctx)()
	o, ok := r.store.orders[id]
	if !ok {
		return cafe.Order{}, ports.ErrNotFound
	}
	return o, nil
}

func (r OrderRepo) List(ctx context.Context) ([]cafe.Order, error) {
	defer r.store.acquireRead(ctx)()
	out := make([]cafe.Order, 0, len(r.store.orderSeq))
	for _, id := range r.store.orderSeq {
		out = append(out, r.store.orders[id])
	}
	return out, nil
}

func (r OrderRepo) Create(ctx context.Context, o cafe.Order) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.orders[o.ID]; ok {
		return ports.ErrConflict
	}
	r.store.orders[o.ID] = o
	r.store.orderSeq = append(r.store.orderSeq, o.ID)
	return nil
}

func (r OrderRepo) Save(ctx context.Context, o cafe.Order) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.orders[o.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.orders[o.ID] = o
	return nil
}

type CustomerRepo struct {
	store *Store
}

func NewCustomerRepo(store *Store) CustomerRepo {
	return CustomerRepo{store: store}
}

func (r CustomerRepo) GetByID(ctx context.Context, id string) (cafe.Customer, error) {
	defer r.store.acquireRead(ctx)()
	c, ok := r.store.customers[id]
	if !ok {
		return cafe.Customer{}, ports.ErrNotFound
	}
	return c, nil
}

func (r CustomerRepo) List(ctx context.Context) ([]cafe.Customer, error) {
	defer r.store.acquireRead(ctx)()
	out := make([]cafe.Customer, 0, len(r.store.custSeq))
	for _, id := range r.store.custSeq {
		out = append(out, r.store.customers[id])
	}
	return out, nil
}

func (r CustomerRepo) Create(ctx context.Context, c cafe.Customer) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.customers[c.ID]; ok {
		return ports.ErrConflict
	}
	r.store.customers[c.ID] = c
	r.store.custSeq = append(r.store.custSeq, c.ID)
	return nil
}

func (r CustomerRepo) Save(ctx context.Context, c cafe.Customer) error {
	defer r.store.acquireWrite(ctx)()
	if _, ok := r.store.customers[c.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.customers[c.ID] = c
	return nil
}

type StaffRepo struct {
	store *Store
}

func NewStaffRepo(store *Store) StaffRepo {
	return StaffRepo{store: store}
}

func (r StaffRepo) List(ctx context.Context) ([]cafe.Staff, error) {
	defer r.store.acquireRead(ctx)()
	return append([]cafe.Staff(nil), r.store.staff...), nil
}

func (r StaffRepo) Create(ctx context.Context, s cafe.Staff) error {
	defer r.store.acquireWrite(ctx)()
	r.store.staff = append(r.store.staff, s)
	return nil
}

type SettingsRepo struct {
	store *Store
}

func NewSettingsRepo(store *Store) SettingsRepo {
	return SettingsRepo{store: store}
}

func (r SettingsRepo) Get(ctx context.Context) (cafe.Settings, error) {
	defer r.store.acquireRead(ctx)()
	if r.store.settings == nil {
		return cafe.Settings{}, ports.ErrNotFound
	}
	return *r.store.settings, nil
}

func (r SettingsRepo) Save(ctx context.Context, s cafe.Settings) error {
	defer r.store.acquireWrite(ctx)()
	r.store.settings = &s
	return nil
}
