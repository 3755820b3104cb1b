package steps

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound = errors.New("step record not found")
	ErrInvalidRecord  = errors.New("invalid step record")
)

const (
	CaloriesPerStep = 0.04
	MetersPerStep   = 0.762
)

type DailyRecord struct {
	UserID            string    `json:"userId"`
	RecordDate        time.Time `json:"recordDate"`
	TotalSteps        int64     `json:"totalSteps"`
	StepCounterSteps  int64     `json:"stepCounterSteps"`
	InitialSteps      int64     `json:"initialSteps"`
	StepsBeforeReboot int64     `json:"stepsBeforeReboot"`
	CaloriesBurned    float64   `json:"caloriesBurned"`
	TotalDistance     float64   `json:"totalDistance"`
	StepGoal          int64     `json:"stepGoal"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (r DailyRecord) Validate() error {
	switch {
	case r.RecordDate.IsZero():
		return fmt.Errorf("%w: missing record date", ErrInvalidRecord)
	case r.TotalSteps < 0:
		return fmt.Errorf("%w: negative total steps", ErrInvalidRecord)
	case r.CaloriesBurned < 0 || r.TotalDistance < 0:
		return fmt.Errorf("%w: negative calories or distance", ErrInvalidRecord)
	}
	return nil
}

// CounterState is the per-device bookkeeping of the raw hardware step
// counter, which resets to zero on every reboot.
type CounterState struct {
	RebootFlag     bool       `json:"rebootFlag"`
	LastUpdateDate *time.Time `json:"lastUpdateDate,omitempty"`
	LastRawCounter int64      `json:"lastRawCounter"`
}

type HealthReading struct {
	Granted  bool
	Steps    int64
	Calories float64
	Distance float64
}
