package goals

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/pkg"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalExists   = errors.New("goal already exists")
	ErrInvalidGoal  = errors.New("invalid goal")
)

type Period string

const (
	Daily  Period = "daily"
	Weekly Period = "weekly"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Weekly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidGoal, s)
	}
}

// Span is the number of days a goal of the period covers.
func (p Period) Span() int {
	if p == Weekly {
		return 7
	}
	return 1
}

// Start aligns day to the first day of the period containing it.
func (p Period) Start(day time.Time) time.Time {
	if p == Weekly {
		return pkg.WeekStart(day)
	}
	return day
}

type Type string

const (
	Walking  Type = "walking"
	Running  Type = "running"
	Cycling  Type = "cycling"
	Swimming Type = "swimming"
	Yoga     Type = "yoga"
	Strength Type = "strength"
	Hiking   Type = "hiking"
)

// boosts convert a goal target into points and XP. Walking targets are in
// steps, the rest in minutes.
var boosts = map[Type]float64{
	Walking:  0.005,
	Running:  1.5,
	Cycling:  1.2,
	Swimming: 1.5,
	Yoga:     0.8,
	Strength: 1.2,
	Hiking:   1.0,
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := boosts[t]; !ok {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidGoal, s)
	}
	return t, nil
}

// Reward returns the points (and equally the XP) a goal of type t with the
// given target is worth.
func Reward(t Type, target float64) int {
	return int(math.Round(target * boosts[t]))
}

type Goal struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Period          Period     `json:"period"`
	Type            Type       `json:"type"`
	Description     string     `json:"description"`
	Target          float64    `json:"target"`
	CurrentProgress float64    `json:"currentProgress"`
	Points          int        `json:"points"`
	XP              int        `json:"xp"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Mandatory       bool       `json:"mandatory"`
}

// IsComplete reports whether progress beats the target. Reaching the target
// exactly is not enough.
func (g Goal) IsComplete(progress float64) bool {
	return progress > g.Target
}

// AquariumReward is the health boost granted once the goal completes.
func (g Goal) AquariumReward() float64 {
	switch {
	case g.Period == Weekly:
		return aquarium.WeeklyGoalReward
	case g.Period == Daily && g.Mandatory:
		return aquarium.DailyGoalReward
	default:
		return 0
	}
}
