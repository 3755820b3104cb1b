package aquarium

import (
	"errors"
	"time"
)

var ErrAquariumNotFound = errors.New("aquarium not found")

const (
	// DecayStep is applied per missed outcome during the daily rollover.
	DecayStep = 0.25
	// HydrationRestore is added when the daily hydration goal is reached.
	HydrationRestore = 0.25
	// DailyGoalReward is added on completion of a mandatory daily goal.
	DailyGoalReward = 0.25
	// WeeklyGoalReward is added on completion of any weekly goal.
	WeeklyGoalReward = 0.5
)

type Stats struct {
	UserID           string     `json:"userId"`
	WaterLevel       float64    `json:"waterLevel"`
	HealthLevel      float64    `json:"healthLevel"`
	LastRolloverDate *time.Time `json:"lastRolloverDate,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewStats(userID string) Stats {
	return Stats{
		UserID:      userID,
		WaterLevel:  1,
		HealthLevel: 1,
	}
}

// Apply returns the stats with the deltas added, both levels kept in [0, 1].
func (s Stats) Apply(dWater, dHealth float64) Stats {
	s.WaterLevel = Clamp(s.WaterLevel + dWater)
	s.HealthLevel = Clamp(s.HealthLevel + dHealth)
	return s
}

func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RolloverInput is what a finished day left behind.
type RolloverInput struct {
	WaterIntakeMl    int
	HydrationGoalMl  int
	MissedDailyGoals int
}

// RolloverDeltas computes the decay for a finished day.
func RolloverDeltas(in RolloverInput) (dWater, dHealth float64) {
	if in.WaterIntakeMl < in.HydrationGoalMl {
		dWater = -DecayStep
	}
	if in.MissedDailyGoals > 0 {
		dHealth = -DecayStep * float64(in.MissedDailyGoals)
	}
	return dWater, dHealth
}
