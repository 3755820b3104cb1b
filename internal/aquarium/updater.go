package aquarium

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=updater_mocks_test.go -package=aquarium_test

type statsRepo interface {
	Get(ctx context.Context, userID string, today time.Time) (*Stats, error)
	Apply(ctx context.Context, userID string, dWater, dHealth float64) (*Stats, error)
	Rollover(ctx context.Context, userID string, today time.Time, dWater, dHealth float64) (*Stats, bool, error)
}

type hydrationSource interface {
	IntakeAndGoal(ctx context.Context, userID string, date time.Time) (intakeMl, goalMl int, err error)
}

type missedGoalsSource interface {
	MissedMandatoryDaily(ctx context.Context, userID string, date time.Time) (int, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID string, eventType stream.EventType, payload any) error
}

type Updater struct {
	*Notifier

	repo           statsRepo
	hydration      hydrationSource
	goals          missedGoalsSource
	metricsManager *metrics.Manager
}

func NewUpdater(
	repo statsRepo,
	hydration hydrationSource,
	goals missedGoalsSource,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Updater {
	return &Updater{
		Notifier:       NewNotifier(repo, publisher, loc),
		repo:           repo,
		hydration:      hydration,
		goals:          goals,
		metricsManager: metricsManager,
	}
}

// Apply adds the deltas atomically and notifies the user's change feed.
func (u *Updater) Apply(ctx context.Context, userID string, dWater, dHealth float64, reason string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.aquarium.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stats, err := u.repo.Apply(ctx, userID, dWater, dHealth)
	if err != nil {
		return nil, fmt.Errorf("apply aquarium delta: %w", err)
	}

	u.metricsManager.CounterAquariumDeltas.WithLabelValues(reason).Inc()
	u.Notify(ctx, stats)
	return stats, nil
}

// Rollover applies the decay for the day before today, at most once per day.
func (u *Updater) Rollover(ctx context.Context, userID string, today time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalWorkerTracer.Start(ctx, "service.aquarium.rollover")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	yesterday := today.AddDate(0, 0, -1)
	intake, goal, err := u.hydration.IntakeAndGoal(ctx, userID, yesterday)
	if err != nil {
		return false, fmt.Errorf("get hydration of %s: %w", yesterday.Format(time.DateOnly), err)
	}
	missed, err := u.goals.MissedMandatoryDaily(ctx, userID, yesterday)
	if err != nil {
		return false, fmt.Errorf("get missed goals of %s: %w", yesterday.Format(time.DateOnly), err)
	}

	dWater, dHealth := RolloverDeltas(RolloverInput{
		WaterIntakeMl:    intake,
		HydrationGoalMl:  goal,
		MissedDailyGoals: missed,
	})

	stats, claimed, err := u.repo.Rollover(ctx, userID, today, dWater, dHealth)
	if err != nil {
		return false, fmt.Errorf("rollover: %w", err)
	}
	if !claimed {
		return false, nil
	}

	log.Debugf("aquarium rollover for user %s: water %+.2f, health %+.2f", userID, dWater, dHealth)
	u.metricsManager.CounterAquariumDeltas.WithLabelValues("rollover").Inc()
	u.Notify(ctx, stats)
	return true, nil
}
