package cattery

import "time"

func NewCat(id, ownerID, name string, rarity Rarity, breed string, now time.Time) Cat {
	return Cat{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Rarity:      rarity,
		Breed:       breed,
		Level:       1,
		Experience:  0,
		Energy:      StartingEnergy,
		MaxEnergy:   StartingMaxEnergy,
		Attributes:  AttributesFor(rarity),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
}

// AttributesFor scales the base attribute scores by the rarity
// multiplier, truncating to integers.
func AttributesFor(r Rarity) Attributes {
	m := rarityMultiplier(r)
	return Attributes{
		Cuteness:     int(BaseAttributeScore * m),
		Playfulness:  int(BaseAttributeScore * m),
		Intelligence: int(BaseAttributeScore * m),
	}
}

// LevelForExperience computes the level implied by an experience total.
// Levels only ever go up: one level per ExperiencePerLevel points.
func LevelForExperience(exp int) int {
	if exp < 0 {
		exp = 0
	}
	return exp/ExperiencePerLevel + 1
}

func (c *Cat) clampEnergy() {
	if c.Energy > EnergyCeiling {
		c.Energy = EnergyCeiling
	}
	if c.Energy < EnergyFloor {
		c.Energy = EnergyFloor
	}
}

// gainExperience adds exp and recomputes the level. Returns the new
// level when the cat leveled up, zero otherwise.
func (c *Cat) gainExperience(exp int) int {
	c.Experience += exp
	level := LevelForExperience(c.Experience)
	if level <= c.Level {
		return 0
	}
	c.Level = level
	c.MaxEnergy += LevelUpEnergyBonus
	return level
}
