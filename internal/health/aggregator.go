package health

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=health_test

type healthRepo interface {
	AddSamples(ctx context.Context, userID string, samples []Sample) (int64, error)
	Sums(ctx context.Context, userID string, from, to time.Time) (map[DataType]float64, error)
	SetPermissions(ctx context.Context, userID string, permissions []DataType) error
	Permissions(ctx context.Context, userID string) ([]DataType, error)
}

// Aggregator is the health data provider: permission-gated ingest and sums.
type Aggregator struct {
	repo healthRepo
}

func NewAggregator(repo healthRepo) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// Aggregate sums the readings in [from, to). Without the steps permission it
// returns ErrPermissionDenied and callers fall back to stored step records.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, from, to time.Time) (_ *Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "health.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	permissions, err := a.repo.Permissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get permissions: %w", err)
	}
	if !slices.Contains(permissions, Steps) {
		return nil, ErrPermissionDenied
	}

	sums, err := a.repo.Sums(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum samples: %w", err)
	}

	agg := &Aggregate{
		Steps:           int64(sums[Steps]),
		CaloriesGranted: slices.Contains(permissions, Calories),
		DistanceGranted: slices.Contains(permissions, Distance),
	}
	if agg.CaloriesGranted {
		agg.Calories = sums[Calories]
	}
	if agg.DistanceGranted {
		agg.Distance = sums[Distance]
	}
	return agg, nil
}

func (a *Aggregator) Ingest(ctx context.Context, userID string, samples []Sample) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "health.ingest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(samples) == 0 {
		return 0, nil
	}
	if len(samples) > MaxSamplesPerBatch {
		return 0, fmt.Errorf("%w: batch of %d exceeds %d", ErrInvalidSample, len(samples), MaxSamplesPerBatch)
	}
	for i, s := range samples {
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return a.repo.AddSamples(ctx, userID, samples)
}

func (a *Aggregator) SetPermissions(ctx context.Context, userID string, permissions []string) (_ []DataType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "health.permissions.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	parsed := make([]DataType, 0, len(permissions))
	for _, p := range permissions {
		t, err := ParseDataType(p)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(parsed, t) {
			parsed = append(parsed, t)
		}
	}
	slices.Sort(parsed)

	if err := a.repo.SetPermissions(ctx, userID, parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (a *Aggregator) Permissions(ctx context.Context, userID string) ([]DataType, error) {
	return a.repo.Permissions(ctx, userID)
}
