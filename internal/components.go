package internal

import (
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/config"
	"github.com/2beens/aquafit/internal/exercise"
	"github.com/2beens/aquafit/internal/goals"
	"github.com/2beens/aquafit/internal/health"
	"github.com/2beens/aquafit/internal/hydration"
	"github.com/2beens/aquafit/internal/market"
	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/users"
	"github.com/2beens/aquafit/internal/worker"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// components holds the domain services of one server instance.
type components struct {
	feed       *stream.RedisFeed
	usersRepo  *users.Repo
	users      *users.Service
	aquarium   *aquarium.Updater
	hydration  *hydration.Service
	healthRepo *health.Repo
	health     *health.Aggregator
	steps      *steps.Service
	goals      *goals.Manager
	tracker    *exercise.Tracker
	market     *market.Service
}

func newComponents(
	dbPool *pgxpool.Pool,
	rdb *redis.Client,
	authService *auth.Service,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *components {
	publisher := stream.NewPublisher(rdb)

	// goals, hydration and the market change aquarium levels in their own
	// transactions and only need to notify; the updater owns the rollover
	aquariumRepo := aquarium.NewRepo(dbPool)
	aquariumNotifier := aquarium.NewNotifier(aquariumRepo, publisher, loc)

	usersRepo := users.NewRepo(dbPool)
	healthRepo := health.NewRepo(dbPool)
	healthAggregator := health.NewAggregator(healthRepo)
	stepsRepo := steps.NewRepo(dbPool)
	exerciseRepo := exercise.NewRepo(dbPool)

	goalsManager := goals.NewManager(
		goals.NewRepo(dbPool),
		goals.NewTargetCalculator(stepsRepo, goals.DefaultTargetParams),
		stepsRepo,
		healthAggregator,
		exerciseRepo,
		aquariumNotifier,
		publisher,
		metricsManager,
		loc,
	)
	hydrationService := hydration.NewService(
		hydration.NewRepo(dbPool),
		usersRepo,
		aquariumNotifier,
		publisher,
		metricsManager,
	)

	return &components{
		feed:       stream.NewRedisFeed(rdb),
		usersRepo:  usersRepo,
		users:      users.NewService(usersRepo, authService),
		aquarium:   aquarium.NewUpdater(aquariumRepo, hydrationService, goalsManager, publisher, metricsManager, loc),
		hydration:  hydrationService,
		healthRepo: healthRepo,
		health:     healthAggregator,
		steps:      steps.NewService(stepsRepo, healthAggregator, goalsManager, publisher, metricsManager, loc),
		goals:      goalsManager,
		tracker:    exercise.NewTracker(exerciseRepo),
		market:     market.NewService(market.NewRepo(dbPool), aquariumNotifier, metricsManager),
	}
}

// newScheduler registers the background jobs. Intervals come from config;
// the rollover also runs on start so a restarted instance catches up.
func newScheduler(
	c *components,
	rdb *redis.Client,
	authService *auth.Service,
	cfg *config.Config,
	metricsManager *metrics.Manager,
	loc *time.Location,
) (*worker.Scheduler, error) {
	scheduler := worker.NewScheduler(worker.NewRedisLocker(rdb), metricsManager)

	jobs := []worker.Job{
		{
			Name:       worker.JobDailyRollover,
			Interval:   seconds(cfg.RolloverIntervalSec),
			RunOnStart: true,
			Run:        worker.DailyRollover(c.usersRepo, c.aquarium, c.goals, loc),
		},
		{
			Name:     worker.JobGoalProgress,
			Interval: seconds(cfg.GoalProgressIntervalSec),
			Run:      worker.GoalProgress(c.usersRepo, c.goals, loc),
		},
		{
			Name:     worker.JobStepRefresh,
			Interval: seconds(cfg.StepRefreshIntervalSec),
			Run:      worker.StepRefresh(c.healthRepo, c.steps),
		},
		{
			Name:     worker.JobSessionCleanup,
			Interval: seconds(cfg.SessionCleanupIntervalSec),
			Run:      worker.SessionCleanup(authService, c.tracker),
		},
	}
	for _, job := range jobs {
		if err := scheduler.Register(job); err != nil {
			return nil, fmt.Errorf("register job %s: %w", job.Name, err)
		}
	}

	return scheduler, nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
