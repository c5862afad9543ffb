package breeding

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
	ErrInvalidRequest = errors.New("invalid breeding request")
	ErrNotOwner       = errors.New("not authorized to access this cat")
)

type Request struct {
	RequesterID string
	Parent1ID   string
	Parent2ID   string
}

type BreedUseCase struct {
	TxManager ports.TxManager
	Cats      ports.CatRepository
	Users     ports.UserRepository
	Events    ports.EventRepository
	Service   cattery.BreedingService
	NewID     func() string
	Now       func() time.Time
}

func (u BreedUseCase) Execute(ctx context.Context, req Request) (cattery.BreedingOutcome, error) {
	if strings.TrimSpace(req.RequesterID) == "" ||
		strings.TrimSpace(req.Parent1ID) == "" ||
		strings.TrimSpace(req.Parent2ID) == "" {
		return cattery.BreedingOutcome{}, ErrInvalidRequest
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

	var outcome cattery.BreedingOutcome
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		parent1, err := u.Cats.GetByID(txCtx, req.Parent1ID)
		if err != nil {
			return err
		}
		parent2, err := u.Cats.GetByID(txCtx, req.Parent2ID)
		if err != nil {
			return err
		}
		if parent1.OwnerID != req.RequesterID || parent2.OwnerID != req.RequesterID {
			return ErrNotOwner
		}
		owner, err := u.Users.GetByID(txCtx, req.RequesterID)
		if err != nil {
			return err
		}

		outcome, err = u.Service.Breed(parent1, parent2, owner.MWTBalance, newID(), now)
		if err != nil {
			return err
		}
		if err := u.Cats.Create(txCtx, outcome.Offspring); err != nil {
			return err
		}

		owner.MWTBalance = outcome.NewBalance
		owner.CatsOwned++
		ownerVersion := owner.Version
		owner.Version++
		if err := u.Users.SaveWithVersion(txCtx, owner, ownerVersion); err != nil {
			return err
		}

		if u.Events != nil {
			if err := u.Events.Append(txCtx, ports.EventRecord{
				ActorID:    req.RequesterID,
				Type:       "cat_breeding",
				OccurredAt: now,
				Payload: map[string]any{
					"offspring_id": outcome.Offspring.ID,
					"parent1_id":   parent1.ID,
					"parent2_id":   parent2.ID,
				},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return cattery.BreedingOutcome{}, err
	}
	return outcome, nil
}
