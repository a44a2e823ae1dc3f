package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	application "marketplace/internal/app"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/admin_overview_get"
	"marketplace/internal/handlers/rest/auth_login_post"
	"marketplace/internal/handlers/rest/auth_register_post"
	"marketplace/internal/handlers/rest/changes_get"
	"marketplace/internal/handlers/rest/courier_availability_put"
	"marketplace/internal/handlers/rest/courier_packages_get"
	"marketplace/internal/handlers/rest/courier_recharge_post"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/marketplace_get"
	"marketplace/internal/handlers/rest/notification_read_post"
	"marketplace/internal/handlers/rest/notifications_get"
	"marketplace/internal/handlers/rest/package_get"
	"marketplace/internal/handlers/rest/package_post"
	"marketplace/internal/handlers/rest/package_status_post"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/pricing_estimate_post"
	"marketplace/internal/handlers/rest/pricing_get"
	"marketplace/internal/handlers/rest/pricing_put"
	"marketplace/internal/handlers/rest/sender_packages_get"
	"marketplace/internal/handlers/rest/tracking_get"
	"marketplace/internal/handlers/rest/user_blocked_put"
	"marketplace/internal/handlers/rest/users_get"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpchealth"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/idempotency"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	pkgredis "marketplace/internal/pkg/redis"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

const (
	serviceName       = "marketplace"
	grpcHealthService = "marketplace.Service"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting application", logger.NewField("service", serviceName))

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background() on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := pkgredis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, splitBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if cfg.Marketplace.AdminPhone != "" {
		admin, err := businessApp.ServiceUser.EnsureAdmin(ctx, cfg.Marketplace.AdminPhone, cfg.Marketplace.AdminPassword)
		if err != nil {
			return fmt.Errorf("admin seed: %w", err)
		}
		runLog.Info("admin account ready", logger.NewField("user_id", admin.ID))
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultInterval)

	// ongoingCtx must survive SIGTERM; it is cancelled only after server.Shutdown()
	// so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr: fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, redisClient, cfg,
			func(ctx context.Context) error { return pool.Ping(ctx) },
			func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// zero: /changes holds the connection open; other routes are bounded by the timeout middleware
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	healthServer := grpchealth.New(log, grpcHealthService)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.ListenAndServe(cfg.GRPC.HealthPort); err != nil {
			healthServerErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.Drain()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// ctx is already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	// open SSE streams end with their subscriptions
	businessApp.Changes.Close()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	healthServer.Shutdown(shutdownCtx)

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	redisClient *goredis.Client,
	cfg *config.Config,
	readiness ...healthcheck_head.Check,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	authenticate := auth.Middleware(log, app.Tokens, app.ServiceUser)
	admin := auth.RequireRole(entities.RoleAdmin)
	sender := auth.RequireRole(entities.RoleSender)
	courier := auth.RequireRole(entities.RoleCourier)
	idempotent := idempotency.Middleware(log, redisClient, cfg.Redis.IdempotencyTTL)

	// streaming routes skip the request timeout
	stream := router.NewRoute().Subrouter()
	stream.Use(authenticate)
	stream.Handle("/changes", changes_get.New(log, app.Changes, changes_get.DefaultHeartbeat)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))

	api.Handle("/metrics", promhttp.Handler())
	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log, serviceName)).Methods("GET")

	api.Handle("/auth/register", auth_register_post.New(log, app.ServiceUser)).Methods("POST")
	api.Handle("/auth/login", chain(auth_login_post.New(log, app.ServiceUser),
		rate_limiter.PerClientMiddleware(log, app.LoginLimiter),
	)).Methods("POST")
	api.Handle("/tracking/{trackingNumber}", tracking_get.New(log, app.ServicePackage)).Methods("GET")

	private := api.NewRoute().Subrouter()
	private.Use(authenticate)

	private.Handle("/users", chain(users_get.New(log, app.ServiceUser), admin)).Methods("GET")
	private.Handle("/users/{id}/blocked", chain(user_blocked_put.New(log, app.ServiceUser), admin)).Methods("PUT")

	private.Handle("/couriers/{id}/availability", chain(courier_availability_put.New(log, app.ServiceUser), courier)).Methods("PUT")
	private.Handle("/couriers/{id}/recharge", chain(courier_recharge_post.New(log, app.ServiceSettlement), courier, idempotent)).Methods("POST")
	private.Handle("/couriers/{id}/packages", courier_packages_get.New(log, app.ServicePackage)).Methods("GET")
	private.Handle("/senders/{id}/packages", sender_packages_get.New(log, app.ServicePackage)).Methods("GET")

	private.Handle("/pricing", pricing_get.New(log, app.ServicePricing)).Methods("GET")
	private.Handle("/pricing", chain(pricing_put.New(log, app.ServicePricing), admin)).Methods("PUT")
	private.Handle("/pricing/estimate", pricing_estimate_post.New(log, app.ServicePricing)).Methods("POST")

	private.Handle("/packages", chain(package_post.New(log, app.ServicePackage), sender, idempotent)).Methods("POST")
	private.Handle("/packages/{id}", package_get.New(log, app.ServicePackage)).Methods("GET")
	private.Handle("/packages/{id}/accept", chain(package_status_post.New(log, app.ServicePackage, package_status_post.ActionAccept), courier)).Methods("POST")
	private.Handle("/packages/{id}/pickup", chain(package_status_post.New(log, app.ServicePackage, package_status_post.ActionPickUp), courier)).Methods("POST")
	private.Handle("/packages/{id}/depart", chain(package_status_post.New(log, app.ServicePackage, package_status_post.ActionDepart), courier)).Methods("POST")
	private.Handle("/packages/{id}/deliver", chain(package_status_post.New(log, app.ServicePackage, package_status_post.ActionDeliver), courier)).Methods("POST")
	private.Handle("/packages/{id}/cancel", package_status_post.New(log, app.ServicePackage, package_status_post.ActionCancel)).Methods("POST")
	private.Handle("/marketplace", chain(marketplace_get.New(log, app.ServicePackage), courier)).Methods("GET")

	private.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	private.Handle("/notifications/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")

	private.Handle("/admin/overview", chain(admin_overview_get.New(log, app.ServiceReport), admin)).Methods("GET")

	return router
}

// chain applies middlewares so that the first one listed runs first.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func splitBrokers(raw string) []string {
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
