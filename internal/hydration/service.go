package hydration

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=hydration_test

type hydrationRepo interface {
	Add(ctx context.Context, userID string, date time.Time, ml, goalMl int) (*AddResult, error)
	Get(ctx context.Context, userID string, date time.Time) (*Record, error)
}

type goalLookup interface {
	HydrationGoal(ctx context.Context, userID string) (int, error)
}

type aquariumNotifier interface {
	Get(ctx context.Context, userID string) (*aquarium.Stats, error)
	Notify(ctx context.Context, stats *aquarium.Stats)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID string, eventType stream.EventType, payload any) error
}

type Service struct {
	repo           hydrationRepo
	goals          goalLookup
	aquarium       aquariumNotifier
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(
	repo hydrationRepo,
	goals goalLookup,
	aquarium aquariumNotifier,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		goals:          goals,
		aquarium:       aquarium,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, userID string, date time.Time, ml int) (_ *AddResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.hydration.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if ml <= 0 || ml > MaxSingleIntakeMl {
		return nil, fmt.Errorf("%w: %d ml", ErrInvalidAmount, ml)
	}

	goalMl, err := s.goals.HydrationGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get hydration goal: %w", err)
	}

	res, err := s.repo.Add(ctx, userID, date, ml, goalMl)
	if err != nil {
		return nil, fmt.Errorf("add water intake: %w", err)
	}
	s.metricsManager.CounterHydrationAdded.Add(float64(ml))

	if err := s.publisher.Publish(ctx, userID, stream.EventHydrationUpdated, res.Record); err != nil {
		log.Warnf("publish hydration update for user %s: %s", userID, err)
	}

	if res.GoalJustReached {
		s.metricsManager.CounterAquariumDeltas.WithLabelValues("hydration").Inc()
		stats, err := s.aquarium.Get(ctx, userID)
		if err != nil {
			log.Warnf("get aquarium after hydration restore for user %s: %s", userID, err)
		} else {
			s.aquarium.Notify(ctx, stats)
		}
	}

	return res, nil
}

// Get returns the day's intake judged against the goal recorded with it, or
// against the current goal when the day has none.
func (s *Service) Get(ctx context.Context, userID string, date time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.hydration.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if rec.GoalMl > 0 {
		return rec, nil
	}

	goalMl, err := s.goals.HydrationGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get hydration goal: %w", err)
	}
	rec.GoalMl = goalMl
	return rec, nil
}

// IntakeAndGoal feeds the aquarium daily rollover. A goal changed after the
// day is over does not re-judge it.
func (s *Service) IntakeAndGoal(ctx context.Context, userID string, date time.Time) (int, int, error) {
	rec, err := s.Get(ctx, userID, date)
	if err != nil {
		return 0, 0, err
	}
	return rec.WaterIntake, rec.GoalMl, nil
}
