package cattery

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

type ActivityKind string

const (
	ActivityFeed  ActivityKind = "feed"
	ActivityPlay  ActivityKind = "play"
	ActivityTrain ActivityKind = "train"
	ActivitySleep ActivityKind = "sleep"
)

func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityFeed, ActivityPlay, ActivityTrain, ActivitySleep:
		return true
	default:
		return false
	}
}

type Attributes struct {
	Cuteness     int `json:"cuteness"`
	Playfulness  int `json:"playfulness"`
	Intelligence int `json:"intelligence"`
}

type Cat struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	Rarity       Rarity     `json:"rarity"`
	Breed        string     `json:"breed"`
	Level        int        `json:"level"`
	Experience   int        `json:"experience"`
	Energy       int        `json:"energy"`
	MaxEnergy    int        `json:"max_energy"`
	Attributes   Attributes `json:"attributes"`
	IsAvailable  bool       `json:"is_available"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int64      `json:"version"`
}

// ActivityOutcome is the settled result of one activity: the mutated cat,
// the owner's new MWT balance and the report returned to the caller.
type ActivityOutcome struct {
	Cat        Cat
	NewBalance float64
	Report     ActivityReport
}

type ActivityReport struct {
	CatID            string       `json:"cat_id"`
	Activity         ActivityKind `json:"activity"`
	Success          bool         `json:"success"`
	EnergyCost       int          `json:"energy_cost"`
	EnergyRemaining  int          `json:"energy_remaining"`
	MWTEarned        float64      `json:"mwt_earned,omitempty"`
	MWTCost          float64      `json:"mwt_cost,omitempty"`
	ExperienceGained int          `json:"experience_gained"`
	NewLevel         int          `json:"new_level,omitempty"`
	Message          string       `json:"message"`
}

// BreedingOutcome carries the offspring plus the owner's debited balance.
type BreedingOutcome struct {
	Offspring  Cat
	NewBalance float64
	MWTCost    float64
}
