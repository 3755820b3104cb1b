package goals

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=target_mocks_test.go -package=goals_test

const (
	megabyte          = 1024 * 1024
	targetCacheSize   = 8 * megabyte
	targetCacheExpire = 60 * 60 // seconds
)

type TargetParams struct {
	Default     float64
	Multiplier  float64
	DaysToCheck int
	RoundTo     float64
}

var DefaultTargetParams = TargetParams{
	Default:     3000,
	Multiplier:  1.05,
	DaysToCheck: 7,
	RoundTo:     250,
}

// historySource reports the sum of stored daily totals in [from, to] and how
// many daily records exist there.
type historySource interface {
	SumTotals(ctx context.Context, userID string, from, to time.Time) (int64, int, error)
}

// CalculateStepTarget derives a step target for [startDate, endDate) from the
// average of the DaysToCheck days before startDate.
func CalculateStepTarget(
	ctx context.Context,
	source historySource,
	userID string,
	startDate, endDate time.Time,
	params TargetParams,
) (float64, error) {
	startDate = pkg.DateOf(startDate)
	from := startDate.AddDate(0, 0, -params.DaysToCheck)
	to := startDate.AddDate(0, 0, -1)

	sum, count, err := source.SumTotals(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("sum step history: %w", err)
	}

	daySpan := max(1, pkg.DaysBetween(startDate, endDate))
	base := params.Default
	if count > 0 {
		if avg := float64(sum) / float64(count); avg >= params.Default {
			base = avg * params.Multiplier
		}
	}

	return roundUp(base*float64(daySpan), params.RoundTo), nil
}

// roundUp rounds v up to a multiple of to. Float noise below 1e-9 of a step
// (e.g. 5000*1.05) must not bump the result to the next multiple.
func roundUp(v, to float64) float64 {
	if to <= 0 {
		to = 1
	}
	steps := math.Round(v/to*1e9) / 1e9
	return math.Ceil(steps) * to
}

// TargetCalculator caches computed targets per user and date range.
type TargetCalculator struct {
	source historySource
	params TargetParams
	cache  *freecache.Cache
}

func NewTargetCalculator(source historySource, params TargetParams) *TargetCalculator {
	return &TargetCalculator{
		source: source,
		params: params,
		cache:  freecache.NewCache(targetCacheSize),
	}
}

func (c *TargetCalculator) Target(ctx context.Context, userID string, startDate, endDate time.Time) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.target")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte(fmt.Sprintf("target::%s::%s::%s", userID, pkg.FormatDate(startDate), pkg.FormatDate(endDate)))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		if target, err := strconv.ParseFloat(string(cached), 64); err == nil {
			return target, nil
		}
		log.Errorf("goals: unparsable cached target for %s: %q", userID, cached)
	}

	target, err := CalculateStepTarget(ctx, c.source, userID, startDate, endDate, c.params)
	if err != nil {
		return 0, err
	}

	if err := c.cache.Set(cacheKey, []byte(strconv.FormatFloat(target, 'f', -1, 64)), targetCacheExpire); err != nil {
		log.Errorf("goals: cache target for %s: %s", userID, err)
	}
	return target, nil
}
