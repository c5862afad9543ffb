package orders

import (
	"context"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubItemRepo struct {
	items map[string]cafe.CafeItem
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]cafe.CafeItem)}
}

func (r *stubItemRepo) GetByID(_ context.Context, id string) (cafe.CafeItem, error) {
	it, ok := r.items[id]
	if !ok {
		return cafe.CafeItem{}, ports.ErrNotFound
	}
	return it, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]cafe.CafeItem, error) {
	out := make([]cafe.CafeItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *stubItemRepo) Create(_ context.Context, item cafe.CafeItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Save(_ context.Context, item cafe.CafeItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return ports.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

type stubOrderRepo struct {
	orders map[string]cafe.Order
	seq    []string
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]cafe.Order)}
}

func (r *stubOrderRepo) GetByID(_ context.Context, id string) (cafe.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return cafe.Order{}, ports.ErrNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]cafe.Order, error) {
	out := make([]cafe.Order, 0, len(r.orders))
	for _, id := range r.seq {
		out = append(out, r.orders[id])
	}
	return out, nil
}

func (r *stubOrderRepo) Create(_ context.Context, o cafe.Order) error {
	r.orders[o.ID] = o
	r.seq = append(r.seq, o.ID)
	return nil
}

func (r *stubOrderRepo) Save(_ context.Context, o cafe.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return ports.ErrNotFound
	}
	r.orders[o.ID] = o
	return nil
}

type stubCustomerRepo struct {
	customers map[string]cafe.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]cafe.Customer)}
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id string) (cafe.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return cafe.Customer{}, ports.ErrNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]cafe.Customer, error) {
	out := make([]cafe.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, c cafe.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Save(_ context.Context, c cafe.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return ports.ErrNotFound
	}
	r.customers[c.ID] = c
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

type stubMetrics struct {
	activities []string
	orders     int
	conflicts  int
	failures   int
}

func (m *stubMetrics) RecordActivity(kind string) { m.activities = append(m.activities, kind) }
func (m *stubMetrics) RecordOrder()               { m.orders++ }
func (m *stubMetrics) RecordConflict()            { m.conflicts++ }
func (m *stubMetrics) RecordFailure()             { m.failures++ }
