package cafe

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyOrder        = errors.New("order has no lines")
	ErrInvalidQuantity   = errors.New("line quantity must be positive")
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the failing item so the transport layer
// can report which line broke the order.
type InsufficientStockError struct {
	ItemID   string
	ItemName string
	Want     int
	Have     int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: want %d, have %d", e.ItemName, e.Want, e.Have)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// OrderService settles a new order against a snapshot of the menu.
// The check runs in two phases: every line is validated against current
// stock before any decrement is applied, so a failing line leaves all
// stock untouched.
type OrderService struct{}

type OrderDraft struct {
	OrderID         string
	CustomerID      string
	Lines           []OrderLine
	TableNumber     int
	SpecialRequests string
}

type OrderSettlement struct {
	Order        Order
	UpdatedItems []CafeItem
}

func (OrderService) Create(draft OrderDraft, items map[string]CafeItem, now time.Time) (OrderSettlement, error) {
	if len(draft.Lines) == 0 {
		return OrderSettlement{}, ErrEmptyOrder
	}

	// Phase one: validate every line.
	need := make(map[string]int, len(draft.Lines))
	for _, line := range draft.Lines {
		if line.Quantity <= 0 {
			return OrderSettlement{}, ErrInvalidQuantity
		}
		item, ok := items[line.ItemID]
		if !ok {
			return OrderSettlement{}, fmt.Errorf("item %s: %w", line.ItemID, ErrItemNotFound)
		}
		need[line.ItemID] += line.Quantity
		if item.StockQuantity < need[line.ItemID] {
			return OrderSettlement{}, &InsufficientStockError{
				ItemID:   item.ID,
				ItemName: item.Name,
				Want:     need[line.ItemID],
				Have:     item.StockQuantity,
			}
		}
	}

	// Phase two: apply all decrements.
	updated := make([]CafeItem, 0, len(need))
	for _, line := range draft.Lines {
		item := items[line.ItemID]
		item.decrementStock(line.Quantity, now)
		items[line.ItemID] = item
	}
	for id := range need {
		updated = append(updated, items[id])
	}

	// Line totals are trusted as supplied by the caller, so the order
	// total can reflect a stale price.
	var total float64
	for _, line := range draft.Lines {
		total += line.TotalPrice
	}

	order := Order{
		ID:              draft.OrderID,
		CafeID:          DefaultCafeID,
		CustomerID:      draft.CustomerID,
		Lines:           draft.Lines,
		TableNumber:     draft.TableNumber,
		SpecialRequests: draft.SpecialRequests,
		Status:          OrderPending,
		TotalAmount:     total,
		TaxAmount:       total * TaxRate,
		TipAmount:       0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return OrderSettlement{Order: order, UpdatedItems: updated}, nil
}

// RecordVisit applies the order side effects to the paying customer.
func (c *Customer) RecordVisit(amount float64, now time.Time) {
	c.TotalVisits++
	c.TotalSpent += amount
	c.LastVisit = &now
	c.UpdatedAt = now
}

// SetStatus applies a status change. No transition graph is enforced:
// any status may follow any other. Served stamps served_at; the staff
// assignment is overwritten with whatever the caller supplied, including
// empty.
func (o *Order) SetStatus(status OrderStatus, staffID string, now time.Time) {
	o.Status = status
	o.StaffID = staffID
	o.UpdatedAt = now
	if status == OrderServed {
		o.ServedAt = &now
	}
}
