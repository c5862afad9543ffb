package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
)

var (
	ErrInvalidRequest = errors.New("invalid cat request")
	ErrNotOwner       = errors.New("not authorized to access this cat")
)

type CreateRequest struct {
	OwnerID string
	Name    string
	Rarity  cattery.Rarity
	Breed   string
}

type CreateUseCase struct {
	TxManager ports.TxManager
	Cats      ports.CatRepository
	Users     ports.UserRepository
	NewID     func() string
	Now       func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (cattery.Cat, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Breed = strings.TrimSpace(req.Breed)
	if req.OwnerID == "" || req.Name == "" || req.Breed == "" || !req.Rarity.Valid() {
		return cattery.Cat{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	cat := cattery.NewCat(newID(), req.OwnerID, req.Name, req.Rarity, req.Breed, nowFn().UTC())

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		owner, err := u.Users.GetByID(txCtx, req.OwnerID)
		if err != nil {
			return err
		}
		if err := u.Cats.Create(txCtx, cat); err != nil {
			return err
		}
		owner.CatsOwned++
		owner.Version++
		return u.Users.SaveWithVersion(txCtx, owner, owner.Version-1)
	})
	if err != nil {
		return cattery.Cat{}, err
	}
	return cat, nil
}

type ListUseCase struct {
	Cats ports.CatRepository
}

func (u ListUseCase) Execute(ctx context.Context, ownerID string) ([]cattery.Cat, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidRequest
	}
	return u.Cats.ListByOwnerID(ctx, ownerID)
}

type GetUseCase struct {
	Cats ports.CatRepository
}

func (u GetUseCase) Execute(ctx context.Context, requesterID, catID string) (cattery.Cat, error) {
	if strings.TrimSpace(requesterID) == "" || strings.TrimSpace(catID) == "" {
		return cattery.Cat{}, ErrInvalidRequest
	}
	cat, err := u.Cats.GetByID(ctx, catID)
	if err != nil {
		return cattery.Cat{}, err
	}
	if cat.OwnerID != requesterID {
		return cattery.Cat{}, ErrNotOwner
	}
	return cat, nil
}
