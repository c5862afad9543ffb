package customers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

var ErrInvalidRequest = errors.New("invalid customer request")

type AddRequest struct {
	Name  string
	Email string
	Phone string
}

type AddUseCase struct {
	TxManager ports.TxManager
	Customers ports.CustomerRepository
	NewID     func() string
	Now       func() time.Time
}

func (u AddUseCase) Execute(ctx context.Context, req AddRequest) (cafe.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		return cafe.Customer{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	customer := cafe.NewCustomer(newID(), req.Name, req.Email, req.Phone, nowFn().UTC())
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Customers.Create(txCtx, customer)
	})
	if err != nil {
		return cafe.Customer{}, err
	}
	return customer, nil
}

type ListRequest struct {
	TopSpenders bool
	Limit       int
}

type ListUseCase struct {
	Customers ports.CustomerRepository
}

func (u ListUseCase) Execute(ctx context.Context, req ListRequest) ([]cafe.Customer, error) {
	out, err := u.Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	if req.TopSpenders {
		// Stable ordering for equal spenders: keep the repository order.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalSpent > out[j].TotalSpent
		})
	}
	if req.Limit > 0 && len(out) > req.Limit {
		out = out[:req.Limit]
	}
	return out, nil
}

type GetUseCase struct {
	Customers ports.CustomerRepository
}

func (u GetUseCase) Execute(ctx context.Context, customerID string) (cafe.Customer, error) {
	if strings.TrimSpace(customerID) == "" {
		return cafe.Customer{}, ErrInvalidRequest
	}
	return u.Customers.GetByID(ctx, customerID)
}
