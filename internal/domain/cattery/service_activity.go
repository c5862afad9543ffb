package cattery

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownActivity    = errors.New("unknown activity kind")
	ErrCatUnavailable     = errors.New("cat is not available for activities")
	ErrInsufficientFunds  = errors.New("insufficient MWT balance")
	ErrInsufficientEnergy = errors.New("cat does not have enough energy")
)

// ActivityService settles one activity against a cat and the owner's
// MWT balance. Pure: the caller persists the returned state.
type ActivityService struct {
	profiles map[ActivityKind]ActivityCostProfile
}

func NewActivityService() ActivityService {
	return ActivityService{profiles: DefaultActivityCostProfiles()}
}

func (s ActivityService) Settle(cat Cat, kind ActivityKind, balance float64, now time.Time) (ActivityOutcome, error) {
	profiles := s.profiles
	if profiles == nil {
		profiles = DefaultActivityCostProfiles()
	}
	profile, ok := profiles[kind]
	if !ok {
		return ActivityOutcome{}, ErrUnknownActivity
	}
	if !cat.IsAvailable {
		return ActivityOutcome{}, ErrCatUnavailable
	}
	// Funds are checked before energy, matching the settlement order the
	// report is built in.
	if profile.MWTCost > 0 && balance < profile.MWTCost {
		return ActivityOutcome{}, ErrInsufficientFunds
	}
	if profile.EnergyCost > 0 && cat.Energy < profile.EnergyCost {
		return ActivityOutcome{}, ErrInsufficientEnergy
	}

	next := cat
	next.Energy = next.Energy - profile.EnergyCost + profile.EnergyGain
	next.clampEnergy()
	newLevel := next.gainExperience(profile.ExperienceGain)
	next.LastActivity = &now
	next.UpdatedAt = now
	next.Version++

	balance -= profile.MWTCost
	balance += profile.MWTReward

	return ActivityOutcome{
		Cat:        next,
		NewBalance: balance,
		Report: ActivityReport{
			CatID:            cat.ID,
			Activity:         kind,
			Success:          true,
			EnergyCost:       profile.EnergyCost,
			EnergyRemaining:  next.Energy,
			MWTEarned:        profile.MWTReward,
			MWTCost:          profile.MWTCost,
			ExperienceGained: profile.ExperienceGain,
			NewLevel:         newLevel,
			Message:          fmt.Sprintf("Successfully performed %s activity!", kind),
		},
	}, nil
}
