package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/goals"
	"github.com/2beens/aquafit/internal/health"
	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=jobs_mocks_test.go -package=worker_test

const (
	JobDailyRollover  = "daily-rollover"
	JobGoalProgress   = "goal-progress"
	JobStepRefresh    = "step-refresh"
	JobSessionCleanup = "session-cleanup"
)

type userLister interface {
	ListIDs(ctx context.Context) ([]string, error)
}

type aquariumRoller interface {
	Rollover(ctx context.Context, userID string, today time.Time) (bool, error)
}

type goalEvaluator interface {
	EnsureWalkingGoals(ctx context.Context, userID string, day time.Time) error
	Evaluate(ctx context.Context, userID string, day time.Time) ([]goals.Goal, error)
}

type healthUserLister interface {
	UsersWithPermission(ctx context.Context, permission health.DataType) ([]string, error)
}

type stepRefresher interface {
	Refresh(ctx context.Context, userID string) (*steps.ReconcileResult, error)
}

type sessionCleaner interface {
	ScanAndClean(ctx context.Context) (int, error)
}

type staleSessionDropper interface {
	DropStale() int
}

// DailyRollover settles yesterday for every user: final goal evaluation,
// aquarium decay, then today's walking goals. Each step is idempotent so a
// retried run does no harm.
func DailyRollover(users userLister, aquarium aquariumRoller, evaluator goalEvaluator, loc *time.Location) JobFunc {
	return func(ctx context.Context) error {
		today := pkg.Today(loc)
		yesterday := today.AddDate(0, 0, -1)

		return forEachUser(ctx, users, func(ctx context.Context, userID string) error {
			var errs error
			if _, err := evaluator.Evaluate(ctx, userID, yesterday); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("evaluate yesterday: %w", err))
			}
			applied, err := aquarium.Rollover(ctx, userID, today)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("aquarium rollover: %w", err))
			} else if applied {
				log.Debugf("worker: aquarium rollover applied for user %s", userID)
			}
			if err := evaluator.EnsureWalkingGoals(ctx, userID, today); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("walking goals: %w", err))
			}
			return errs
		})
	}
}

func GoalProgress(users userLister, evaluator goalEvaluator, loc *time.Location) JobFunc {
	return func(ctx context.Context) error {
		today := pkg.Today(loc)
		return forEachUser(ctx, users, func(ctx context.Context, userID string) error {
			if err := evaluator.EnsureWalkingGoals(ctx, userID, today); err != nil {
				return fmt.Errorf("walking goals: %w", err)
			}
			_, err := evaluator.Evaluate(ctx, userID, today)
			return err
		})
	}
}

// StepRefresh reconciles today's record of users sharing health data, so
// that steps counted by other devices show up without a tick.
func StepRefresh(users healthUserLister, refresher stepRefresher) JobFunc {
	return func(ctx context.Context) error {
		userIDs, err := users.UsersWithPermission(ctx, health.Steps)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		return eachUser(ctx, userIDs, func(ctx context.Context, userID string) error {
			_, err := refresher.Refresh(ctx, userID)
			return err
		})
	}
}

func SessionCleanup(cleaner sessionCleaner, tracker staleSessionDropper) JobFunc {
	return func(ctx context.Context) error {
		removed, err := cleaner.ScanAndClean(ctx)
		if err != nil {
			return fmt.Errorf("clean auth sessions: %w", err)
		}
		dropped := tracker.DropStale()
		log.Infof("worker: removed %d auth sessions, dropped %d stale exercise sessions", removed, dropped)
		return nil
	}
}

func forEachUser(ctx context.Context, users userLister, fn func(ctx context.Context, userID string) error) error {
	userIDs, err := users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	return eachUser(ctx, userIDs, fn)
}

func eachUser(ctx context.Context, userIDs []string, fn func(ctx context.Context, userID string) error) error {
	var errs error
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return Permanent(err)
		}
		if err := fn(ctx, userID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", userID, err))
		}
	}
	if errs != nil {
		failed := len(multierr.Errors(errs))
		return fmt.Errorf("%d of %d users failed: %w", failed, len(userIDs), errs)
	}
	return nil
}
