package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
)

var (
	ErrInvalidRequest = errors.New("invalid activity request")
	ErrNotOwner       = errors.New("not authorized to access this cat")
)

type Request struct {
	RequesterID string
	CatID       string
	Kind        cattery.ActivityKind
}

// PerformUseCase settles one activity for a cat and persists both the
// cat and the owner's wallet under optimistic version checks.
type PerformUseCase struct {
	TxManager ports.TxManager
	Cats      ports.CatRepository
	Users     ports.UserRepository
	Events    ports.EventRepository
	Metrics   ports.CafeMetrics
	Service   cattery.ActivityService
	Now       func() time.Time
}

func (u PerformUseCase) Execute(ctx context.Context, req Request) (cattery.ActivityOutcome, error) {
	if strings.TrimSpace(req.RequesterID) == "" || strings.TrimSpace(req.CatID) == "" {
		return cattery.ActivityOutcome{}, ErrInvalidRequest
	}
	if !req.Kind.Valid() {
		return cattery.ActivityOutcome{}, cattery.ErrUnknownActivity
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	var outcome cattery.ActivityOutcome
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		cat, err := u.Cats.GetByID(txCtx, req.CatID)
		if err != nil {
			return err
		}
		if cat.OwnerID != req.RequesterID {
			return ErrNotOwner
		}
		owner, err := u.Users.GetByID(txCtx, req.RequesterID)
		if err != nil {
			return err
		}

		outcome, err = u.Service.Settle(cat, req.Kind, owner.MWTBalance, now)
		if err != nil {
			return err
		}

		// Settle already advanced the cat's version by one.
		if err := u.Cats.SaveWithVersion(txCtx, outcome.Cat, outcome.Cat.Version-1); err != nil {
			return err
		}

		owner.MWTBalance = outcome.NewBalance
		ownerVersion := owner.Version
		owner.Version++
		if err := u.Users.SaveWithVersion(txCtx, owner, ownerVersion); err != nil {
			return err
		}

		if u.Events != nil {
			if err := u.Events.Append(txCtx, ports.EventRecord{
				ActorID:    req.RequesterID,
				Type:       "cat_activity." + string(req.Kind),
				OccurredAt: now,
				Payload: map[string]any{
					"cat_id":            outcome.Report.CatID,
					"activity":          string(outcome.Report.Activity),
					"energy_remaining":  outcome.Report.EnergyRemaining,
					"experience_gained": outcome.Report.ExperienceGained,
				},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return cattery.ActivityOutcome{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordActivity(string(req.Kind))
	}
	return outcome, nil
}
