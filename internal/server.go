package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymcoach/internal/auth"
	"github.com/2beens/gymcoach/internal/cache"
	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/gymstats"
	"github.com/2beens/gymcoach/internal/gymstats/applier"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/engine"
	gymstatsmcp "github.com/2beens/gymcoach/internal/gymstats/mcp"
	"github.com/2beens/gymcoach/internal/gymstats/quota"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	engine        *engine.Engine
	mcpService    *gymstatsmcp.ContextService
	secretChecker *auth.SecretChecker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: cfg.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(metrics.RegistryParams{
		Version: params.VersionInfo,
		Extra:   []prometheus.Collector{pgxpoolCollector},
	})
	metricsManager := metrics.NewManager("backend", "gymcoach", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		// the burst gates fail open without redis
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombEnabled, "gymcoach-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if cfg.AppSecretHash == "" {
		log.Errorln("app secret hash not set, use GYMCOACH_APP_SECRET_HASH; all API calls will be rejected")
	}

	trainingEngine := NewTrainingEngine(cfg, dbPool, rdb, tracedHttpClient, metricsManager)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		engine:        trainingEngine,
		mcpService:    gymstatsmcp.NewContextService(gymstatsmcp.NewPoolSchemaRepo(dbPool), trainingEngine),
		secretChecker: auth.NewSecretChecker(cfg.AppSecretHash),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

// NewTrainingEngine wires the repo, LLM coach, quota and caches into an engine.
// Also used by the stdio MCP binary.
func NewTrainingEngine(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	rdb *redis.Client,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *engine.Engine {
	if cfg.LLM.APIKey == "" {
		log.Warnln("LLM api key not set, use GYMCOACH_LLM_API_KEY; optimize and guidance calls will fail soft")
	}

	gymRepo := repo.NewRepo(dbPool)
	gymRepo.SetDefaultCycleLength(cfg.DefaultCycleLength)

	limiter := quota.NewLimiter(
		gymRepo,
		redis_rate.NewLimiter(rdb),
		quota.Limits{
			Plan:           cfg.DailyPlanLimit,
			Guidance:       cfg.DailyGuidanceLimit,
			Analysis:       cfg.DailyAnalysisLimit,
			BurstPerMinute: cfg.BurstPerMinute,
		},
		metricsManager,
	)

	llmClient := coach.NewClient(coach.ClientConfig{
		BaseURL:    cfg.LLM.BaseURL,
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.Model,
		Timeout:    cfg.LLM.Timeout.Duration,
		MaxRetries: cfg.LLM.MaxRetries,
		Title:      "GymCoach",
	}, httpClient)

	trainingCoach := coach.NewCoach(llmClient, limiter, coach.Config{
		Pricing: coach.Pricing{
			InPer1K:  cfg.LLM.CostInPer1K,
			OutPer1K: cfg.LLM.CostOutPer1K,
		},
		Optimize: coach.CallOptions{
			Temperature: cfg.LLM.OptimizeTemperature,
			MaxTokens:   cfg.LLM.OptimizeMaxTokens,
		},
		Guidance: coach.CallOptions{
			Temperature: cfg.LLM.GuidanceTemperature,
			MaxTokens:   cfg.LLM.GuidanceMaxTokens,
		},
	}, metricsManager)

	return engine.New(engine.Params{
		Store:     gymRepo,
		Coach:     trainingCoach,
		Quota:     limiter,
		Applier:   applier.NewApplier(gymRepo),
		Analytics: cache.NewAnalytics(cfg.DashboardCacheSizeMB, metricsManager),
		Reference: cache.NewReference(cache.DefaultReferenceSizeMB, cfg.ReferenceCacheTTL.Duration, metricsManager),
		Metrics:   metricsManager,
	})
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymcoach-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "gymcoach")
	}).Methods("GET")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	gymcoachRouter := r.PathPrefix("/gymcoach").Subrouter()
	gymcoachRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"gymcoach",
		s.config.APIRequestsPerMin,
	))
	gymstats.NewHandler(s.engine).SetupRoutes(gymcoachRouter)

	r.PathPrefix("/mcp").Handler(gymstatsmcp.NewHTTPHandler(s.mcpService, s.config.MCPSecret))

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.secretChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody(int64(s.config.MaxRequestBodyKB) << 10))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dbPool.Ping(ctx); err != nil {
		log.Errorf("health: db ping: %s", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// optimize calls can take a while
		WriteTimeout: 2 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{Registry: s.promRegistry}),
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

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// ResetReferenceCache is triggered by SIGHUP, after the exercise catalog was reseeded.
func (s *Server) ResetReferenceCache() {
	s.engine.ResetReferenceCache()
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the pool and redis go away
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> shutdown: %s", e)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
