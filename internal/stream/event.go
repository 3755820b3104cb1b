package stream

import "time"

type EventType string

const (
	EventAquariumUpdated  EventType = "aquarium_updated"
	EventGoalCompleted    EventType = "goal_completed"
	EventStepsUpdated     EventType = "steps_updated"
	EventHydrationUpdated EventType = "hydration_updated"
)

// Event is what change feed subscribers receive, one JSON object per message.
type Event struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"userId"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func channelName(userID string) string {
	return "aquafit:feed:" + userID
}
