package health

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPermissionDenied = errors.New("health permission denied")
	ErrInvalidSample    = errors.New("invalid health sample")
	ErrUnknownType      = errors.New("unknown health data type")
)

// MaxSamplesPerBatch limits a single ingest request.
const MaxSamplesPerBatch = 1000

// DataType names both a sample kind and the read permission guarding it.
type DataType string

const (
	Steps    DataType = "steps"
	Distance DataType = "distance"
	Calories DataType = "calories"
)

func ParseDataType(s string) (DataType, error) {
	switch t := DataType(s); t {
	case Steps, Distance, Calories:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

type Sample struct {
	ID        int64             `json:"id,omitempty"`
	UserID    string            `json:"userId,omitempty"`
	Type      DataType          `json:"type"`
	Value     float64           `json:"value"`
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (s Sample) Validate() error {
	if _, err := ParseDataType(string(s.Type)); err != nil {
		return err
	}
	if s.Value < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidSample)
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return fmt.Errorf("%w: missing time range", ErrInvalidSample)
	}
	if s.EndTime.Before(s.StartTime) {
		return fmt.Errorf("%w: end before start", ErrInvalidSample)
	}
	return nil
}

// Aggregate holds summed readings. Calories and Distance stay zero when the
// matching permission is not granted.
type Aggregate struct {
	Steps           int64   `json:"steps"`
	Calories        float64 `json:"calories"`
	Distance        float64 `json:"distance"`
	CaloriesGranted bool    `json:"caloriesGranted"`
	DistanceGranted bool    `json:"distanceGranted"`
}
