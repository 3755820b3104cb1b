package exercise

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrSessionNotFound = errors.New("exercise session not found")
	ErrSessionActive   = errors.New("an exercise session is already active")
	ErrInvalidSession  = errors.New("invalid exercise session")
)

var exerciseTypes = []string{
	"walking",
	"running",
	"cycling",
	"swimming",
	"yoga",
	"strength",
	"hiking",
}

func ValidateType(exerciseType string) error {
	if !slices.Contains(exerciseTypes, exerciseType) {
		return fmt.Errorf("%w: unknown exercise type %q", ErrInvalidSession, exerciseType)
	}
	return nil
}

type Session struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	ExerciseType string     `json:"exerciseType"`
	StartedAt    time.Time  `json:"startedAt"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	Steps        int64      `json:"steps"`
	Distance     float64    `json:"distance"`
	Calories     float64    `json:"calories"`
}

func (s Session) Minutes() float64 {
	if s.FinishedAt == nil {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt).Minutes()
}

type FinishStats struct {
	Steps    int64   `json:"steps"`
	Distance float64 `json:"distance"`
	Calories float64 `json:"calories"`
}

func (f FinishStats) Validate() error {
	if f.Steps < 0 || f.Distance < 0 || f.Calories < 0 {
		return fmt.Errorf("%w: negative stats", ErrInvalidSession)
	}
	return nil
}
