package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/health"
	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=steps_test

// MaxListDays bounds a history listing.
const MaxListDays = 366

const (
	sourceTick    = "tick"
	sourceRefresh = "refresh"
)

type stepsRepo interface {
	Get(ctx context.Context, userID string, date time.Time) (*DailyRecord, error)
	List(ctx context.Context, userID string, from, to time.Time) ([]DailyRecord, error)
	Save(ctx context.Context, rec DailyRecord, state CounterState) error
	Merge(ctx context.Context, rec DailyRecord) (*DailyRecord, error)
	GetState(ctx context.Context, userID string) (CounterState, error)
	SaveState(ctx context.Context, userID string, state CounterState) error
}

type healthSource interface {
	Aggregate(ctx context.Context, userID string, from, to time.Time) (*health.Aggregate, error)
}

type stepGoalSource interface {
	DailyStepGoal(ctx context.Context, userID string, date time.Time) (int64, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, userID string, eventType stream.EventType, payload any) error
}

type Service struct {
	repo           stepsRepo
	health         healthSource
	goals          stepGoalSource
	publisher      eventPublisher
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo stepsRepo,
	health healthSource,
	goals stepGoalSource,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		health:         health,
		goals:          goals,
		publisher:      publisher,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// SetNow replaces the clock, used by tests.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Tick reconciles a fresh raw counter reading from the device.
func (s *Service) Tick(ctx context.Context, userID string, rawCounter int64) (_ *ReconcileResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.steps.tick")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if rawCounter < 0 {
		return nil, fmt.Errorf("%w: negative raw counter", ErrInvalidRecord)
	}

	state, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get counter state: %w", err)
	}
	return s.reconcile(ctx, userID, rawCounter, state, sourceTick)
}

// Refresh folds health data that arrived in the background into today's
// record. No counter reading is involved: the stored raw counter may predate
// a reboot, so the counter state is neither used nor written and the record
// is only ever raised.
func (s *Service) Refresh(ctx context.Context, userID string) (_ *ReconcileResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.steps.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get counter state: %w", err)
	}
	return s.reconcile(ctx, userID, -1, state, sourceRefresh)
}

// reconcile treats a negative raw value as "no new reading".
func (s *Service) reconcile(ctx context.Context, userID string, raw int64, state CounterState, source string) (*ReconcileResult, error) {
	now := s.now()
	today := pkg.DateOf(now.In(s.loc))

	existing, err := s.repo.Get(ctx, userID, today)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("get today's record: %w", err)
	}

	stepGoal, err := s.goals.DailyStepGoal(ctx, userID, today)
	if err != nil {
		log.Warnf("steps: daily goal for user %s: %s", userID, err)
		stepGoal = 0
	}

	res := Reconcile(ReconcileInput{
		UserID:     userID,
		Today:      today,
		Now:        now,
		Existing:   existing,
		State:      state,
		RawCounter: raw,
		NoReading:  raw < 0,
		Health:     s.healthReading(ctx, userID, today),
		StepGoal:   stepGoal,
	})

	if res.Case == CaseHealthOnly {
		merged, err := s.repo.Merge(ctx, res.Record)
		if err != nil {
			return nil, fmt.Errorf("merge step record: %w", err)
		}
		res.Record = *merged
	} else if err := s.repo.Save(ctx, res.Record, res.State); err != nil {
		return nil, fmt.Errorf("save step record: %w", err)
	}
	s.metricsManager.CounterStepTicks.WithLabelValues(source, string(res.Case)).Inc()
	s.publish(ctx, &res.Record)

	return &res, nil
}

func (s *Service) healthReading(ctx context.Context, userID string, today time.Time) HealthReading {
	from, to := pkg.DayRange(today, s.loc)
	agg, err := s.health.Aggregate(ctx, userID, from, to)
	if errors.Is(err, health.ErrPermissionDenied) {
		return HealthReading{}
	}
	if err != nil {
		log.Warnf("steps: health aggregate for user %s: %s", userID, err)
		return HealthReading{}
	}
	return HealthReading{
		Granted:  true,
		Steps:    agg.Steps,
		Calories: agg.Calories,
		Distance: agg.Distance,
	}
}

// Reboot is called by the device after a restart, before its next tick.
func (s *Service) Reboot(ctx context.Context, userID string) (_ CounterState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.steps.reboot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return CounterState{}, fmt.Errorf("get counter state: %w", err)
	}

	today := pkg.DateOf(s.now().In(s.loc))
	existing, err := s.repo.Get(ctx, userID, today)
	if errors.Is(err, ErrRecordNotFound) {
		// nothing counted today, the next tick starts a new day anyway
		state.RebootFlag = true
		return state, s.repo.SaveState(ctx, userID, state)
	}
	if err != nil {
		return CounterState{}, fmt.Errorf("get today's record: %w", err)
	}

	rec, state := MarkReboot(*existing, state)
	if err := s.repo.Save(ctx, rec, state); err != nil {
		return CounterState{}, fmt.Errorf("save reboot: %w", err)
	}
	return state, nil
}

// Push merges a record reconciled on the device.
func (s *Service) Push(ctx context.Context, userID string, rec DailyRecord) (_ *DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.steps.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	rec.UserID = userID
	rec.RecordDate = pkg.DateOf(rec.RecordDate)

	merged, err := s.repo.Merge(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("merge step record: %w", err)
	}
	s.publish(ctx, merged)
	return merged, nil
}

func (s *Service) Get(ctx context.Context, userID string, date time.Time) (*DailyRecord, error) {
	return s.repo.Get(ctx, userID, date)
}

func (s *Service) List(ctx context.Context, userID string, from, to time.Time) ([]DailyRecord, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", ErrInvalidRecord)
	}
	if pkg.DaysBetween(from, to) >= MaxListDays {
		return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidRecord, MaxListDays)
	}
	return s.repo.List(ctx, userID, from, to)
}

func (s *Service) publish(ctx context.Context, rec *DailyRecord) {
	if err := s.publisher.Publish(ctx, rec.UserID, stream.EventStepsUpdated, rec); err != nil {
		log.Warnf("publish steps update for user %s: %s", rec.UserID, err)
	}
}
