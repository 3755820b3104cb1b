package hydration

import (
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("invalid water amount")

// MaxSingleIntakeMl bounds one add request.
const MaxSingleIntakeMl = 5000

type Record struct {
	UserID      string    `json:"userId"`
	RecordDate  time.Time `json:"recordDate"`
	WaterIntake int       `json:"waterIntake"`
	GoalReached bool      `json:"goalReached"`
	GoalMl      int       `json:"goalMl"`
}

type AddResult struct {
	Record
	// GoalJustReached is true only for the add that crossed the goal.
	GoalJustReached bool `json:"goalJustReached"`
}
