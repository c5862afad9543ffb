package cattery

// ActivityCostProfile is the fixed cost/reward table entry for one
// activity kind. Zero fields mean the activity neither costs nor grants
// that resource.
type ActivityCostProfile struct {
	EnergyCost     int
	EnergyGain     int
	MWTCost        float64
	MWTReward      float64
	ExperienceGain int
}

func DefaultActivityCostProfiles() map[ActivityKind]ActivityCostProfile {
	return map[ActivityKind]ActivityCostProfile{
		ActivityFeed: {
			EnergyGain:     ActivityFeedEnergyGain,
			MWTCost:        ActivityFeedMWTCost,
			ExperienceGain: ActivityFeedExpGain,
		},
		ActivityPlay: {
			EnergyCost:     ActivityPlayEnergyCost,
			MWTReward:      ActivityPlayMWTReward,
			ExperienceGain: ActivityPlayExpGain,
		},
		ActivityTrain: {
			EnergyCost:     ActivityTrainEnergyCost,
			ExperienceGain: ActivityTrainExpGain,
		},
		ActivitySleep: {
			EnergyGain:     ActivitySleepEnergyGain,
			ExperienceGain: ActivitySleepExpGain,
		},
	}
}
