package cattery

import (
	"errors"
	"fmt"
	"time"
)

var ErrBreedWithSelf = errors.New("cannot breed a cat with itself")

type BreedingService struct{}

// Breed produces an offspring from two parent cats, debiting the fixed
// breeding cost from the owner's balance. Ownership of both parents is
// the caller's responsibility.
func (BreedingService) Breed(parent1, parent2 Cat, balance float64, offspringID string, now time.Time) (BreedingOutcome, error) {
	if parent1.ID == parent2.ID {
		return BreedingOutcome{}, ErrBreedWithSelf
	}
	if balance < BreedingCostMWT {
		return BreedingOutcome{}, ErrInsufficientFunds
	}

	rarity := OffspringRarity(parent1.Rarity, parent2.Rarity)
	name := fmt.Sprintf("%s + %s's Baby", parent1.Name, parent2.Name)
	breed := fmt.Sprintf("Mixed %s-%s", parent1.Breed, parent2.Breed)

	offspring := NewCat(offspringID, parent1.OwnerID, name, rarity, breed, now)

	return BreedingOutcome{
		Offspring:  offspring,
		NewBalance: balance - BreedingCostMWT,
		MWTCost:    BreedingCostMWT,
	}, nil
}

// OffspringRarity applies the fixed downgrade table: a legendary parent
// yields epic, an epic parent yields rare, anything else yields common.
// Offspring rarity never reaches the better parent's tier.
func OffspringRarity(a, b Rarity) Rarity {
	if a == RarityLegendary || b == RarityLegendary {
		return RarityEpic
	}
	if a == RarityEpic || b == RarityEpic {
		return RarityRare
	}
	return RarityCommon
}
