package users

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidInput = errors.New("invalid input")
)

const DefaultHydrationGoalMl = 2000

// LevelThresholds holds the minimum XP of each level, level 1 starting at 0.
var LevelThresholds = []int64{0, 100, 250, 500, 1000, 2000, 3500, 5500, 8000, 11000, 15000}

type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PasswordHash    string    `json:"-"`
	Points          int64     `json:"points"`
	XP              int64     `json:"xp"`
	HydrationGoalMl int       `json:"hydrationGoalMl"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Profile struct {
	User
	Level       int   `json:"level"`
	NextLevelXP int64 `json:"nextLevelXp,omitempty"`
}

func NewProfile(u User) Profile {
	level := LevelForXP(u.XP)
	p := Profile{User: u, Level: level}
	if level < len(LevelThresholds) {
		p.NextLevelXP = LevelThresholds[level]
	}
	return p
}

// LevelForXP derives the level from accumulated XP; it is never stored.
func LevelForXP(xp int64) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}
