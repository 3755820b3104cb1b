package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/config"
	"github.com/2beens/aquafit/internal/db"
	"github.com/2beens/aquafit/internal/exercise"
	"github.com/2beens/aquafit/internal/goals"
	"github.com/2beens/aquafit/internal/health"
	"github.com/2beens/aquafit/internal/hydration"
	"github.com/2beens/aquafit/internal/market"
	"github.com/2beens/aquafit/internal/middleware"
	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/internal/users"
	"github.com/2beens/aquafit/internal/worker"
	"github.com/2beens/aquafit/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	loc    *time.Location
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service
	rateLimiter  middleware.RequestRateLimiter

	components *components
	scheduler  *worker.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg, secrets := params.Config, params.Secrets

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.DBPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("aquafit", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	c := newComponents(dbPool, rdb, authService, metricsManager, loc)

	scheduler, err := newScheduler(c, rdb, authService, cfg, metricsManager, loc)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      cfg,
		loc:         loc,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		rateLimiter:  redis_rate.NewLimiter(rdb),

		components: c,
		scheduler:  scheduler,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("aquafit-router"))

	c := s.components
	loginRateLimit := middleware.RateLimit(s.rateLimiter, "login", s.config.LoginRateLimitAllowedPerMin, s.metricsManager)
	tickRateLimit := middleware.RateLimit(s.rateLimiter, "tick", s.config.TickRateLimitAllowedPerMin, s.metricsManager)

	r.HandleFunc("/", s.handleRoot).Methods("GET")
	r.HandleFunc("/version", s.handleVersion).Methods("GET")

	usersHandler := users.NewHandler(c.users)
	r.Handle("/users", loginRateLimit(http.HandlerFunc(usersHandler.HandleRegister))).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/a/login", loginRateLimit(http.HandlerFunc(usersHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/a/logout", usersHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	r.HandleFunc("/users/me", usersHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/users/me/hydration-goal", usersHandler.HandleSetHydrationGoal).Methods("PUT", "OPTIONS").Name("set-hydration-goal")

	aquariumHandler := aquarium.NewHandler(c.aquarium)
	r.HandleFunc("/aquarium", aquariumHandler.HandleGet).Methods("GET", "OPTIONS").Name("aquarium")

	hydrationHandler := hydration.NewHandler(c.hydration)
	r.HandleFunc("/hydration/{date}", hydrationHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-hydration")
	r.HandleFunc("/hydration/{date}/add", hydrationHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-hydration")

	healthHandler := health.NewHandler(c.health)
	r.HandleFunc("/health/samples", healthHandler.HandleAddSamples).Methods("POST", "OPTIONS").Name("add-health-samples")
	r.HandleFunc("/health/permissions", healthHandler.HandleGetPermissions).Methods("GET", "OPTIONS").Name("get-health-permissions")
	r.HandleFunc("/health/permissions", healthHandler.HandleSetPermissions).Methods("PUT", "OPTIONS").Name("set-health-permissions")

	stepsHandler := steps.NewHandler(c.steps)
	r.Handle("/steps/tick", tickRateLimit(http.HandlerFunc(stepsHandler.HandleTick))).Methods("POST", "OPTIONS").Name("steps-tick")
	r.HandleFunc("/steps/reboot", stepsHandler.HandleReboot).Methods("POST", "OPTIONS").Name("steps-reboot")
	r.HandleFunc("/steps", stepsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-steps")
	r.HandleFunc("/steps/{date}", stepsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-steps")
	r.HandleFunc("/steps/{date}", stepsHandler.HandlePush).Methods("PUT", "OPTIONS").Name("push-steps")

	goalsHandler := goals.NewHandler(c.goals)
	r.HandleFunc("/goals", goalsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals/target", goalsHandler.HandleTarget).Methods("GET", "OPTIONS").Name("step-target")
	r.HandleFunc("/goals/evaluate", goalsHandler.HandleEvaluate).Methods("POST", "OPTIONS").Name("evaluate-goals")
	r.HandleFunc("/goals/{period}/{date}", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")

	exerciseHandler := exercise.NewHandler(c.tracker)
	r.HandleFunc("/exercise/sessions", exerciseHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/exercise/sessions/start", exerciseHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/exercise/sessions/active", exerciseHandler.HandleActive).Methods("GET", "OPTIONS").Name("active-session")
	r.HandleFunc("/exercise/sessions/{id}/finish", exerciseHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")

	marketHandler := market.NewHandler(c.market)
	r.HandleFunc("/market/items", marketHandler.HandleItems).Methods("GET", "OPTIONS").Name("market-items")
	r.HandleFunc("/market/purchase", marketHandler.HandlePurchase).Methods("POST", "OPTIONS").Name("purchase")
	r.HandleFunc("/inventory", marketHandler.HandleInventory).Methods("GET", "OPTIONS").Name("inventory")
	r.HandleFunc("/inventory/{itemId}/use", marketHandler.HandleUse).Methods("POST", "OPTIONS").Name("use-item")

	streamHandler := stream.NewHandler(c.feed, s.metricsManager, originHosts(s.config.AllowedOrigins))
	r.HandleFunc("/stream", streamHandler.HandleStream).Methods("GET").Name("stream")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:           router,
		Addr:              ipAndPort,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Minute,
		ReadTimeout:       time.Minute,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if err := s.scheduler.Start(ctx); err != nil {
		log.Errorf("start scheduler: %s", err)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	// jobs may still use redis and the db pool
	s.scheduler.Stop()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

// originHosts turns configured origins into the host patterns the websocket
// library matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		u, err := url.Parse(o)
		if err != nil || u.Host == "" {
			log.Warnf("skipping invalid allowed origin [%s]", o)
			continue
		}
		hosts = append(hosts, u.Host)
	}
	return hosts
}
