package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubItemRepo struct {
	items map[string]cafe.CafeItem
	order []string
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
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *stubItemRepo) Create(_ context.Context, item cafe.CafeItem) error {
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *stubItemRepo) Save(_ context.Context, item cafe.CafeItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return ports.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestCreateItem(t *testing.T) {
	repo := newStubItemRepo()
	uc := CreateItemUseCase{TxManager: stubTxManager{}, Items: repo, NewID: func() string { return "item-1" }, Now: fixedNow}

	item, err := uc.Execute(context.Background(), CreateItemRequest{
		Name: "Catpuccino", Category: cafe.CategoryDrink,
		Price: 4.50, Cost: 1.50, StockQuantity: 20, MinStockLevel: 5,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if item.ID != "item-1" || !item.IsAvailable {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.ProfitMargin < 66.6 || item.ProfitMargin > 66.7 {
		t.Fatalf("profit margin = %v", item.ProfitMargin)
	}
	if _, ok := repo.items["item-1"]; !ok {
		t.Fatalf("item not persisted")
	}
}

func TestCreateItemZeroStockUnavailable(t *testing.T) {
	uc := CreateItemUseCase{TxManager: stubTxManager{}, Items: newStubItemRepo(), NewID: func() string { return "item-1" }, Now: fixedNow}
	item, err := uc.Execute(context.Background(), CreateItemRequest{
		Name: "Tuna Cake", Category: cafe.CategoryDessert, Price: 3, Cost: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if item.IsAvailable {
		t.Fatalf("zero stock item should be unavailable")
	}
}

func TestCreateItemValidation(t *testing.T) {
	uc := CreateItemUseCase{TxManager: stubTxManager{}, Items: newStubItemRepo()}
	cases := []CreateItemRequest{
		{Name: "", Category: cafe.CategoryFood, Price: 1},
		{Name: "Scone", Category: cafe.ItemCategory("weapon"), Price: 1},
		{Name: "Scone", Category: cafe.CategoryFood, Price: -1},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("req %+v: err = %v, want ErrInvalidRequest", req, err)
		}
	}
}

func TestListItemsFilters(t *testing.T) {
	repo := newStubItemRepo()
	now := fixedNow()
	repo.Create(context.Background(), cafe.NewCafeItem("a", "Latte", cafe.CategoryDrink, "", 4, 1, 10, 2, now))
	repo.Create(context.Background(), cafe.NewCafeItem("b", "Mocha", cafe.CategoryDrink, "", 5, 2, 0, 2, now))
	repo.Create(context.Background(), cafe.NewCafeItem("c", "Toast", cafe.CategoryFood, "", 3, 1, 8, 2, now))

	uc := ListItemsUseCase{Items: repo}

	all, err := uc.Execute(context.Background(), ListItemsRequest{})
	if err != nil || len(all) != 3 {
		t.Fatalf("all = %d items, err %v", len(all), err)
	}

	drinks, _ := uc.Execute(context.Background(), ListItemsRequest{Category: cafe.CategoryDrink})
	if len(drinks) != 2 {
		t.Fatalf("drinks = %d, want 2", len(drinks))
	}

	available, _ := uc.Execute(context.Background(), ListItemsRequest{Category: cafe.CategoryDrink, AvailableOnly: true})
	if len(available) != 1 || available[0].ID != "a" {
		t.Fatalf("available drinks = %+v", available)
	}

	if _, err := uc.Execute(context.Background(), ListItemsRequest{Category: cafe.ItemCategory("weapon")}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestUpdateStock(t *testing.T) {
	repo := newStubItemRepo()
	repo.Create(context.Background(), cafe.NewCafeItem("a", "Latte", cafe.CategoryDrink, "", 4, 1, 0, 2, fixedNow()))

	uc := UpdateStockUseCase{TxManager: stubTxManager{}, Items: repo, Now: fixedNow}

	item, err := uc.Execute(context.Background(), UpdateStockRequest{ItemID: "a", Quantity: 15})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if item.StockQuantity != 15 || !item.IsAvailable {
		t.Fatalf("unexpected item: %+v", item)
	}

	item, err = uc.Execute(context.Background(), UpdateStockRequest{ItemID: "a", Quantity: -5})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if item.StockQuantity != 0 || item.IsAvailable {
		t.Fatalf("negative quantity should clamp to zero: %+v", item)
	}

	if _, err := uc.Execute(context.Background(), UpdateStockRequest{ItemID: "ghost", Quantity: 1}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
