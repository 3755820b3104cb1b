package exercise

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=exercise_test

// MaxSessionDuration caps how long a session may stay active.
const MaxSessionDuration = 12 * time.Hour

type sessionsRepo interface {
	Insert(ctx context.Context, s Session) error
	List(ctx context.Context, userID string, from, to time.Time) ([]Session, error)
}

// Tracker owns the active sessions, at most one per user. Finished sessions
// are handed to the repo.
type Tracker struct {
	repo sessionsRepo
	now  func() time.Time

	mu     sync.Mutex
	active map[string]*Session
}

func NewTracker(repo sessionsRepo) *Tracker {
	return &Tracker{
		repo:   repo,
		now:    time.Now,
		active: make(map[string]*Session),
	}
}

// SetNow replaces the clock, used by tests.
func (t *Tracker) SetNow(now func() time.Time) {
	t.now = now
}

func (t *Tracker) Start(ctx context.Context, userID, exerciseType string) (*Session, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "exercise.start")
	defer span.End()

	if err := ValidateType(exerciseType); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.active[userID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionActive, s.ID)
	}

	s := &Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		ExerciseType: exerciseType,
		StartedAt:    t.now().UTC(),
	}
	t.active[userID] = s

	started := *s
	return &started, nil
}

func (t *Tracker) Finish(ctx context.Context, userID, sessionID string, stats FinishStats) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercise.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := stats.Validate(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	s, ok := t.active[userID]
	if !ok || s.ID != sessionID {
		t.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	delete(t.active, userID)
	t.mu.Unlock()

	finished := *s
	finishedAt := t.now().UTC()
	if limit := finished.StartedAt.Add(MaxSessionDuration); finishedAt.After(limit) {
		finishedAt = limit
	}
	finished.FinishedAt = &finishedAt
	finished.Steps = stats.Steps
	finished.Distance = stats.Distance
	finished.Calories = stats.Calories

	if err := t.repo.Insert(ctx, finished); err != nil {
		// put it back so the client can retry
		t.mu.Lock()
		if _, taken := t.active[userID]; !taken {
			t.active[userID] = s
		}
		t.mu.Unlock()
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &finished, nil
}

func (t *Tracker) Active(userID string) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.active[userID]
	if !ok {
		return nil, false
	}
	active := *s
	return &active, true
}

func (t *Tracker) List(ctx context.Context, userID string, from, to time.Time) ([]Session, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: empty range", ErrInvalidSession)
	}
	return t.repo.List(ctx, userID, from, to)
}

// DropStale discards active sessions older than MaxSessionDuration and
// returns how many were dropped.
func (t *Tracker) DropStale() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-MaxSessionDuration)
	dropped := 0
	for userID, s := range t.active {
		if s.StartedAt.Before(cutoff) {
			log.Debugf("exercise: dropping stale session %s of user %s", s.ID, userID)
			delete(t.active, userID)
			dropped++
		}
	}
	return dropped
}
