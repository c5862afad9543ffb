package cattery

const (
	BaseAttributeScore = 50

	// Energy is clamped to this fixed ceiling after every activity.
	// Note this is deliberately NOT MaxEnergy: leveling raises MaxEnergy
	// by LevelUpEnergyBonus but the activity clamp stays at 100.
	EnergyCeiling = 100
	EnergyFloor   = 0

	StartingEnergy    = 100
	StartingMaxEnergy = 100

	ExperiencePerLevel  = 100
	LevelUpEnergyBonus  = 10
	BreedingCostMWT     = 50.0
	StartingBalanceMWT  = 100.0

	ActivityFeedEnergyGain = 20
	ActivityFeedMWTCost    = 10.0
	ActivityFeedExpGain    = 5

	ActivityPlayEnergyCost = 20
	ActivityPlayMWTReward  = 15.0
	ActivityPlayExpGain    = 10

	ActivityTrainEnergyCost = 30
	ActivityTrainExpGain    = 20

	ActivitySleepEnergyGain = 50
	ActivitySleepExpGain    = 2
)

var rarityMultipliers = map[Rarity]float64{
	RarityCommon:    1.0,
	RarityRare:      1.2,
	RarityEpic:      1.5,
	RarityLegendary: 2.0,
}

func rarityMultiplier(r Rarity) float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return rarityMultipliers[RarityCommon]
}
