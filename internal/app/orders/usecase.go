package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

var ErrInvalidRequest = errors.New("invalid order request")

type CreateRequest struct {
	CustomerID      string
	Lines           []cafe.OrderLine
	TableNumber     int
	SpecialRequests string
}

// CreateUseCase settles a new order: stock is validated and decremented
// atomically with the order insert and the customer's visit counters.
type CreateUseCase struct {
	TxManager ports.TxManager
	Orders    ports.OrderRepository
	Items     ports.ItemRepository
	Customers ports.CustomerRepository
	Events    ports.EventRepository
	Metrics   ports.CafeMetrics
	Service   cafe.OrderService
	NewID     func() string
	Now       func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (cafe.Order, error) {
	if strings.TrimSpace(req.CustomerID) == "" || len(req.Lines) == 0 {
		return cafe.Order{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	var order cafe.Order
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := u.Customers.GetByID(txCtx, req.CustomerID)
		if err != nil {
			return err
		}

		snapshot := make(map[string]cafe.CafeItem, len(req.Lines))
		for _, line := range req.Lines {
			if _, ok := snapshot[line.ItemID]; ok {
				continue
			}
			item, err := u.Items.GetByID(txCtx, line.ItemID)
			if err != nil {
				if errors.Is(err, ports.ErrNotFound) {
					continue // the domain check reports the missing item
				}
				return err
			}
			snapshot[line.ItemID] = item
		}

		settlement, err := u.Service.Create(cafe.OrderDraft{
			OrderID:         newID(),
			CustomerID:      req.CustomerID,
			Lines:           req.Lines,
			TableNumber:     req.TableNumber,
			SpecialRequests: req.SpecialRequests,
		}, snapshot, now)
		if err != nil {
			return err
		}

		if err := u.Orders.Create(txCtx, settlement.Order); err != nil {
			return err
		}
		for _, item := range settlement.UpdatedItems {
			if err := u.Items.Save(txCtx, item); err != nil {
				return err
			}
		}

		customer.RecordVisit(settlement.Order.TotalAmount, now)
		if err := u.Customers.Save(txCtx, customer); err != nil {
			return err
		}

		if u.Events != nil {
			if err := u.Events.Append(txCtx, ports.EventRecord{
				ActorID:    req.CustomerID,
				Type:       "cafe_order",
				OccurredAt: now,
				Payload: map[string]any{
					"order_id":     settlement.Order.ID,
					"total_amount": settlement.Order.TotalAmount,
				},
			}); err != nil {
				return err
			}
		}

		order = settlement.Order
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return cafe.Order{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordOrder()
	}
	return order, nil
}

type ListRequest struct {
	Status     cafe.OrderStatus
	CustomerID string
}

type ListUseCase struct {
	Orders ports.OrderRepository
}

func (u ListUseCase) Execute(ctx context.Context, req ListRequest) ([]cafe.Order, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, ErrInvalidRequest
	}
	orders, err := u.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]cafe.Order, 0, len(orders))
	for _, o := range orders {
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		if req.CustomerID != "" && o.CustomerID != req.CustomerID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

type UpdateStatusRequest struct {
	OrderID string
	Status  cafe.OrderStatus
	StaffID string
}

type UpdateStatusUseCase struct {
	TxManager ports.TxManager
	Orders    ports.OrderRepository
	Now       func() time.Time
}

func (u UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (cafe.Order, error) {
	if strings.TrimSpace(req.OrderID) == "" || !req.Status.Valid() {
		return cafe.Order{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var order cafe.Order
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		order, err = u.Orders.GetByID(txCtx, req.OrderID)
		if err != nil {
			return err
		}
		order.SetStatus(req.Status, req.StaffID, nowFn().UTC())
		return u.Orders.Save(txCtx, order)
	})
	if err != nil {
		return cafe.Order{}, err
	}
	return order, nil
}
