package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newFixture() (CreateUseCase, *stubOrderRepo, *stubItemRepo, *stubCustomerRepo, *stubMetrics) {
	items := newStubItemRepo()
	ordersRepo := newStubOrderRepo()
	customers := newStubCustomerRepo()
	metrics := &stubMetrics{}
	now := fixedNow()

	items.items["latte"] = cafe.NewCafeItem("latte", "Catpuccino", cafe.CategoryDrink, "", 4, 1, 10, 2, now)
	items.items["cake"] = cafe.NewCafeItem("cake", "Tuna Cake", cafe.CategoryDessert, "", 3, 1, 2, 1, now)
	customers.customers["cust-1"] = cafe.NewCustomer("cust-1", "Mia", "mia@example.com", "", now)

	uc := CreateUseCase{
		TxManager: stubTxManager{},
		Orders:    ordersRepo,
		Items:     items,
		Customers: customers,
		Events:    &stubEventRepo{},
		Metrics:   metrics,
		NewID:     func() string { return "order-1" },
		Now:       fixedNow,
	}
	return uc, ordersRepo, items, customers, metrics
}

func TestCreateOrder(t *testing.T) {
	uc, ordersRepo, items, customers, metrics := newFixture()

	order, err := uc.Execute(context.Background(), CreateRequest{
		CustomerID: "cust-1",
		Lines: []cafe.OrderLine{
			{ItemID: "latte", Quantity: 2, UnitPrice: 4, TotalPrice: 8},
			{ItemID: "cake", Quantity: 2, UnitPrice: 3, TotalPrice: 6},
		},
		TableNumber: 3,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if order.TotalAmount != 14 {
		t.Fatalf("total = %v, want 14", order.TotalAmount)
	}
	if order.TaxAmount != 14*cafe.TaxRate {
		t.Fatalf("tax = %v", order.TaxAmount)
	}
	if order.Status != cafe.OrderPending {
		t.Fatalf("status = %q", order.Status)
	}

	if items.items["latte"].StockQuantity != 8 {
		t.Fatalf("latte stock = %d, want 8", items.items["latte"].StockQuantity)
	}
	cake := items.items["cake"]
	if cake.StockQuantity != 0 || cake.IsAvailable {
		t.Fatalf("cake should be drained and unavailable: %+v", cake)
	}

	cust := customers.customers["cust-1"]
	if cust.TotalVisits != 1 || cust.TotalSpent != 14 {
		t.Fatalf("customer not updated: %+v", cust)
	}
	if _, ok := ordersRepo.orders["order-1"]; !ok {
		t.Fatalf("order not persisted")
	}
	if metrics.orders != 1 {
		t.Fatalf("orders metric = %d, want 1", metrics.orders)
	}
}

func TestCreateOrderInsufficientStockTouchesNothing(t *testing.T) {
	uc, ordersRepo, items, customers, metrics := newFixture()

	_, err := uc.Execute(context.Background(), CreateRequest{
		CustomerID: "cust-1",
		Lines: []cafe.OrderLine{
			{ItemID: "latte", Quantity: 1, UnitPrice: 4, TotalPrice: 4},
			{ItemID: "cake", Quantity: 5, UnitPrice: 3, TotalPrice: 15},
		},
	})
	if !errors.Is(err, cafe.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	var stockErr *cafe.InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.ItemID != "cake" {
		t.Fatalf("failing item not reported: %v", err)
	}

	if items.items["latte"].StockQuantity != 10 {
		t.Fatalf("stock decremented on failed order")
	}
	if len(ordersRepo.orders) != 0 {
		t.Fatalf("order persisted on failure")
	}
	if customers.customers["cust-1"].TotalVisits != 0 {
		t.Fatalf("customer updated on failure")
	}
	if metrics.failures != 1 {
		t.Fatalf("failures metric = %d, want 1", metrics.failures)
	}
}

func TestCreateOrderUnknownItem(t *testing.T) {
	uc, _, _, _, _ := newFixture()
	_, err := uc.Execute(context.Background(), CreateRequest{
		CustomerID: "cust-1",
		Lines:      []cafe.OrderLine{{ItemID: "ghost", Quantity: 1, TotalPrice: 1}},
	})
	if !errors.Is(err, cafe.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	uc, _, _, _, _ := newFixture()
	_, err := uc.Execute(context.Background(), CreateRequest{
		CustomerID: "ghost",
		Lines:      []cafe.OrderLine{{ItemID: "latte", Quantity: 1, TotalPrice: 4}},
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListOrdersFilters(t *testing.T) {
	repo := newStubOrderRepo()
	repo.Create(context.Background(), cafe.Order{ID: "o1", CustomerID: "c1", Status: cafe.OrderPending})
	repo.Create(context.Background(), cafe.Order{ID: "o2", CustomerID: "c2", Status: cafe.OrderServed})
	repo.Create(context.Background(), cafe.Order{ID: "o3", CustomerID: "c1", Status: cafe.OrderServed})

	uc := ListUseCase{Orders: repo}

	served, err := uc.Execute(context.Background(), ListRequest{Status: cafe.OrderServed})
	if err != nil || len(served) != 2 {
		t.Fatalf("served = %d, err %v", len(served), err)
	}
	mine, _ := uc.Execute(context.Background(), ListRequest{Status: cafe.OrderServed, CustomerID: "c1"})
	if len(mine) != 1 || mine[0].ID != "o3" {
		t.Fatalf("filtered = %+v", mine)
	}
	if _, err := uc.Execute(context.Background(), ListRequest{Status: cafe.OrderStatus("lost")}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubOrderRepo()
	repo.Create(context.Background(), cafe.Order{ID: "o1", Status: cafe.OrderPending})

	uc := UpdateStatusUseCase{TxManager: stubTxManager{}, Orders: repo, Now: fixedNow}

	order, err := uc.Execute(context.Background(), UpdateStatusRequest{
		OrderID: "o1", Status: cafe.OrderServed, StaffID: "staff-1",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if order.Status != cafe.OrderServed || order.StaffID != "staff-1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.ServedAt == nil || !order.ServedAt.Equal(fixedNow()) {
		t.Fatalf("served_at not stamped: %+v", order.ServedAt)
	}

	// Any status may follow any other, including leaving served.
	order, err = uc.Execute(context.Background(), UpdateStatusRequest{OrderID: "o1", Status: cafe.OrderPending})
	if err != nil || order.Status != cafe.OrderPending {
		t.Fatalf("revert failed: %v %+v", err, order)
	}

	if _, err := uc.Execute(context.Background(), UpdateStatusRequest{OrderID: "o1", Status: cafe.OrderStatus("lost")}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if _, err := uc.Execute(context.Background(), UpdateStatusRequest{OrderID: "ghost", Status: cafe.OrderReady}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
