package goals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/health"
	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=goals_test

const (
	MaxExerciseMinutes = 24 * 60 * 7
	maxDescriptionLen  = 200
)

type goalsRepo interface {
	Insert(ctx context.Context, g Goal) (bool, error)
	Upsert(ctx context.Context, goals []Goal) error
	Find(ctx context.Context, userID string, period Period, goalType Type, startDate time.Time) (*Goal, error)
	ListActive(ctx context.Context, userID string, date time.Time) ([]Goal, error)
	List(ctx context.Context, userID string, period Period, date time.Time) ([]Goal, error)
	CountMissedMandatory(ctx context.Context, userID string, date time.Time) (int, error)
	Complete(ctx context.Context, g Goal, progress float64, at time.Time) (bool, error)
}

type targetSource interface {
	Target(ctx context.Context, userID string, startDate, endDate time.Time) (float64, error)
}

type stepAggregator interface {
	Aggregate(ctx context.Context, userID string, from, to time.Time) (*health.Aggregate, error)
}

type exerciseSource interface {
	MinutesByType(ctx context.Context, userID, exerciseType string, from, to time.Time) (float64, error)
}

type aquariumNotifier interface {
	Get(ctx context.Context, userID string) (*aquarium.Stats, error)
	Notify(ctx context.Context, stats *aquarium.Stats)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID string, eventType stream.EventType, payload any) error
}

type CreateGoalRequest struct {
	Period      Period    `json:"period"`
	Type        Type      `json:"type"`
	Target      float64   `json:"target"`
	StartDate   time.Time `json:"-"`
	Description string    `json:"description"`
	Mandatory   bool      `json:"mandatory"`
}

// Manager owns the goal lifecycle: creation, progress evaluation and the
// one-way transition to completed.
type Manager struct {
	repo           goalsRepo
	targets        targetSource
	history        historySource
	aggregator     stepAggregator
	exercise       exerciseSource
	aquarium       aquariumNotifier
	publisher      eventPublisher
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewManager(
	repo goalsRepo,
	targets targetSource,
	history historySource,
	aggregator stepAggregator,
	exercise exerciseSource,
	aquarium aquariumNotifier,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	return &Manager{
		repo:           repo,
		targets:        targets,
		history:        history,
		aggregator:     aggregator,
		exercise:       exercise,
		aquarium:       aquarium,
		publisher:      publisher,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// SetNow replaces the clock, used by tests.
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}

func (m *Manager) today() time.Time {
	return pkg.DateOf(m.now().In(m.loc))
}

// EnsureWalkingGoals creates the mandatory daily walking goal for day and the
// weekly walking goal of day's week, if they are missing.
func (m *Manager) EnsureWalkingGoals(ctx context.Context, userID string, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.ensure_walking")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = pkg.DateOf(day)
	for _, period := range []Period{Daily, Weekly} {
		start := period.Start(day)
		if _, err := m.repo.Find(ctx, userID, period, Walking, start); err == nil {
			continue
		} else if !errors.Is(err, ErrGoalNotFound) {
			return fmt.Errorf("find %s walking goal: %w", period, err)
		}

		end := start.AddDate(0, 0, period.Span())
		target, err := m.targets.Target(ctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("%s walking target: %w", period, err)
		}

		reward := Reward(Walking, target)
		g := Goal{
			ID:          uuid.NewString(),
			UserID:      userID,
			Period:      period,
			Type:        Walking,
			Description: fmt.Sprintf("Walk more than %.0f steps", target),
			Target:      target,
			Points:      reward,
			XP:          reward,
			StartDate:   start,
			EndDate:     end,
			Mandatory:   period == Daily,
		}
		if _, err := m.repo.Insert(ctx, g); err != nil {
			return fmt.Errorf("insert %s walking goal: %w", period, err)
		}
	}
	return nil
}

func (m *Manager) CreateExerciseGoal(ctx context.Context, userID string, req CreateGoalRequest) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := ParsePeriod(string(req.Period)); err != nil {
		return nil, err
	}
	if _, err := ParseType(string(req.Type)); err != nil {
		return nil, err
	}
	if req.Type == Walking {
		return nil, fmt.Errorf("%w: walking goals are generated", ErrInvalidGoal)
	}
	if req.Target <= 0 || req.Target > MaxExerciseMinutes {
		return nil, fmt.Errorf("%w: target must be in (0, %d] minutes", ErrInvalidGoal, MaxExerciseMinutes)
	}
	description := strings.TrimSpace(req.Description)
	if len(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description too long", ErrInvalidGoal)
	}
	if description == "" {
		description = fmt.Sprintf("%s for more than %.0f minutes", req.Type, req.Target)
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = m.today()
	}
	start := req.Period.Start(pkg.DateOf(startDate))

	reward := Reward(req.Type, req.Target)
	g := Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Period:      req.Period,
		Type:        req.Type,
		Description: description,
		Target:      req.Target,
		Points:      reward,
		XP:          reward,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, req.Period.Span()),
		Mandatory:   req.Mandatory,
	}

	created, err := m.repo.Insert(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	if !created {
		return nil, ErrGoalExists
	}
	return &g, nil
}

// Evaluate recomputes the progress of every goal running on day, completes
// those whose progress beats the target and persists the rest.
func (m *Manager) Evaluate(ctx context.Context, userID string, day time.Time) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = pkg.DateOf(day)
	active, err := m.repo.ListActive(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list active goals: %w", err)
	}

	aquariumChanged := false
	byPeriod := make(map[Period][]Goal)
	for i := range active {
		g := &active[i]
		if g.Completed {
			continue
		}

		progress, err := m.progress(ctx, *g)
		if err != nil {
			log.Errorf("goals: progress of %s for user %s: %s", g.ID, userID, err)
			continue
		}
		g.CurrentProgress = progress

		if g.IsComplete(progress) {
			completed, err := m.complete(ctx, *g)
			if err != nil {
				log.Errorf("goals: complete %s for user %s: %s", g.ID, userID, err)
			} else if completed {
				now := m.now()
				g.Completed = true
				g.CompletedAt = &now
				aquariumChanged = aquariumChanged || g.AquariumReward() > 0
			}
		}
		byPeriod[g.Period] = append(byPeriod[g.Period], *g)
	}

	for period, goals := range byPeriod {
		if _, err := m.UpdateGoals(ctx, userID, period, day, goals); err != nil {
			return nil, fmt.Errorf("update %s goals: %w", period, err)
		}
	}

	if aquariumChanged {
		if stats, err := m.aquarium.Get(ctx, userID); err != nil {
			log.Warnf("goals: get aquarium for user %s: %s", userID, err)
		} else {
			m.aquarium.Notify(ctx, stats)
		}
	}

	return active, nil
}

// EvaluateToday makes sure today's walking goals exist and evaluates them.
func (m *Manager) EvaluateToday(ctx context.Context, userID string) ([]Goal, error) {
	today := m.today()
	if err := m.EnsureWalkingGoals(ctx, userID, today); err != nil {
		return nil, err
	}
	return m.Evaluate(ctx, userID, today)
}

func (m *Manager) complete(ctx context.Context, g Goal) (bool, error) {
	completed, err := m.repo.Complete(ctx, g, g.CurrentProgress, m.now())
	if err != nil || !completed {
		return false, err
	}

	m.metricsManager.CounterGoalsCompleted.WithLabelValues(string(g.Period), string(g.Type)).Inc()
	if g.AquariumReward() > 0 {
		m.metricsManager.CounterAquariumDeltas.WithLabelValues("goal").Inc()
	}
	g.Completed = true
	if err := m.publisher.Publish(ctx, g.UserID, stream.EventGoalCompleted, g); err != nil {
		log.Warnf("publish goal completed for user %s: %s", g.UserID, err)
	}
	return true, nil
}

func (m *Manager) progress(ctx context.Context, g Goal) (float64, error) {
	from, to := pkg.DaysRange(g.StartDate, g.EndDate, m.loc)

	if g.Type != Walking {
		return m.exercise.MinutesByType(ctx, g.UserID, string(g.Type), from, to)
	}

	stored, _, err := m.history.SumTotals(ctx, g.UserID, g.StartDate, g.EndDate.AddDate(0, 0, -1))
	if err != nil {
		return 0, fmt.Errorf("sum stored steps: %w", err)
	}

	agg, err := m.aggregator.Aggregate(ctx, g.UserID, from, to)
	if errors.Is(err, health.ErrPermissionDenied) {
		return float64(stored), nil
	}
	if err != nil {
		log.Warnf("goals: health aggregate for user %s, using stored steps: %s", g.UserID, err)
		return float64(stored), nil
	}
	return float64(max(agg.Steps, stored)), nil
}

// UpdateGoals persists goals of period. Goals that ended on or before
// compareDate are expired and left out of the write.
func (m *Manager) UpdateGoals(ctx context.Context, userID string, period Period, compareDate time.Time, goals []Goal) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	compareDate = pkg.DateOf(compareDate)
	keep := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.UserID != userID || g.Period != period {
			continue
		}
		if !g.EndDate.After(compareDate) {
			continue
		}
		keep = append(keep, g)
	}

	if err := m.repo.Upsert(ctx, keep); err != nil {
		return 0, err
	}
	return len(keep), nil
}

func (m *Manager) List(ctx context.Context, userID string, period Period, date time.Time) ([]Goal, error) {
	return m.repo.List(ctx, userID, period, pkg.DateOf(date))
}

// DailyStepGoal is the step target of the daily walking goal on date.
func (m *Manager) DailyStepGoal(ctx context.Context, userID string, date time.Time) (int64, error) {
	date = pkg.DateOf(date)
	g, err := m.repo.Find(ctx, userID, Daily, Walking, date)
	if err == nil {
		return int64(g.Target), nil
	}
	if !errors.Is(err, ErrGoalNotFound) {
		return 0, err
	}

	target, err := m.targets.Target(ctx, userID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return int64(target), nil
}

// MissedMandatoryDaily counts the mandatory daily goals of date left
// incomplete.
func (m *Manager) MissedMandatoryDaily(ctx context.Context, userID string, date time.Time) (int, error) {
	return m.repo.CountMissedMandatory(ctx, userID, pkg.DateOf(date))
}

func (m *Manager) Target(ctx context.Context, userID string, startDate, endDate time.Time) (float64, error) {
	if endDate.Before(startDate) {
		return 0, fmt.Errorf("%w: end before start", ErrInvalidGoal)
	}
	return m.targets.Target(ctx, userID, pkg.DateOf(startDate), pkg.DateOf(endDate))
}
