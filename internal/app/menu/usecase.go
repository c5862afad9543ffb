package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

var ErrInvalidRequest = errors.New("invalid menu request")

type CreateItemRequest struct {
	Name          string
	Category      cafe.ItemCategory
	Description   string
	Price         float64
	Cost          float64
	StockQuantity int
	MinStockLevel int
}

type CreateItemUseCase struct {
	TxManager ports.TxManager
	Items     ports.ItemRepository
	NewID     func() string
	Now       func() time.Time
}

func (u CreateItemUseCase) Execute(ctx context.Context, req CreateItemRequest) (cafe.CafeItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !req.Category.Valid() {
		return cafe.CafeItem{}, ErrInvalidRequest
	}
	if req.Price < 0 || req.Cost < 0 || req.StockQuantity < 0 || req.MinStockLevel < 0 {
		return cafe.CafeItem{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	item := cafe.NewCafeItem(newID(), req.Name, req.Category, req.Description,
		req.Price, req.Cost, req.StockQuantity, req.MinStockLevel, nowFn().UTC())
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Items.Create(txCtx, item)
	})
	if err != nil {
		return cafe.CafeItem{}, err
	}
	return item, nil
}

type ListItemsRequest struct {
	Category      cafe.ItemCategory
	AvailableOnly bool
}

type ListItemsUseCase struct {
	Items ports.ItemRepository
}

func (u ListItemsUseCase) Execute(ctx context.Context, req ListItemsRequest) ([]cafe.CafeItem, error) {
	if req.Category != "" && !req.Category.Valid() {
		return nil, ErrInvalidRequest
	}
	items, err := u.Items.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]cafe.CafeItem, 0, len(items))
	for _, item := range items {
		if req.Category != "" && item.Category != req.Category {
			continue
		}
		if req.AvailableOnly && !item.IsAvailable {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

type UpdateStockRequest struct {
	ItemID   string
	Quantity int
}

type UpdateStockUseCase struct {
	TxManager ports.TxManager
	Items     ports.ItemRepository
	Now       func() time.Time
}

func (u UpdateStockUseCase) Execute(ctx context.Context, req UpdateStockRequest) (cafe.CafeItem, error) {
	if strings.TrimSpace(req.ItemID) == "" {
		return cafe.CafeItem{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var item cafe.CafeItem
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		item, err = u.Items.GetByID(txCtx, req.ItemID)
		if err != nil {
			return err
		}
		item.SetStock(req.Quantity, nowFn().UTC())
		return u.Items.Save(txCtx, item)
	})
	if err != nil {
		return cafe.CafeItem{}, err
	}
	return item, nil
}
