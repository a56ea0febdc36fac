// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/spoutbreeze-be/internal/adapters/bbb"
	"github.com/ammerola/spoutbreeze-be/internal/adapters/db"
	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/internal/handlers/middleware"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/config"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/logger"
	"github.com/ammerola/spoutbreeze-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting spoutbreeze api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	ctx := context.Background()

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sm, err := config.NewSecretsManager(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to create secrets manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := config.LoadSecrets(ctx, cfg, sm); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat,
		logger.WithService("spoutbreeze-api", Version, cfg.App.Environment),
		logger.WithSampling(cfg.App.LogSampleRate),
		logger.WithFiles(cfg.App.LogFiles...),
	)
	defer slogger.Close()
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger.Logger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	cacheStore     *redis_a.Store
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	services       *services.Set
	handlers       handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.cacheStore != nil {
		d.cacheStore.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to build redis options: %w", err)
	}

	// A store that never connects serves every read from the database
	deps.cacheStore = redis_a.NewStore(redis_a.StoreConfig{
		Options:         redisOpts,
		ConnectAttempts: cfg.Redis.ConnectAttempts,
		ConnectBackoff:  cfg.Redis.ConnectBackoff,
		OpTimeout:       cfg.Redis.OpTimeout,
	}, logger)
	if cfg.Cache.Enabled {
		if err := deps.cacheStore.Connect(ctx); err != nil {
			logger.Warn("cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		}
	}

	redisOpt := asynqRedisOpt(redisOpts)
	deps.asynqClient = asynq.NewClient(redisOpt)
	deps.asynqInspector = asynq.NewInspector(redisOpt)

	bbbClient, err := bbb.NewClient(bbb.Config{
		ServerBaseURL: cfg.BBB.ServerBaseURL,
		Secret:        cfg.BBB.Secret,
		Timeout:       cfg.BBB.RequestTimeout,
	}, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bbb client: %w", err)
	}

	invalidator := cache.NewInvalidator(deps.cacheStore,
		workers.NewInvalidationQueue(deps.asynqClient, cfg.Asynq.RetryMax), logger)

	deps.services = services.NewSet(services.Deps{
		Users:       db.NewUserRepository(logger),
		Channels:    db.NewChannelRepository(logger),
		Events:      db.NewEventRepository(logger),
		Endpoints:   db.NewRtmpRepository(logger),
		Meetings:    db.NewMeetingRepository(logger),
		BBB:         bbbClient,
		ReadThrough: cache.NewReadThrough(deps.cacheStore, logger),
		Invalidator: invalidator,
		TTLs:        cacheTTLs(cfg),
		Event: services.EventConfig{
			MeetingEndedURL: cfg.BBB.MeetingEndedURL,
			Welcome:         cfg.BBB.Welcome,
			Record:          cfg.BBB.Record,
		},
		Logger: logger,
	})

	pool := database.Pool()
	deps.handlers = handlers.Handlers{
		Users:      handlers.NewUserHandler(deps.services.Users, pool, logger),
		Channels:   handlers.NewChannelHandler(deps.services.Channels, pool, logger),
		Events:     handlers.NewEventHandler(deps.services.Events, pool, logger),
		Rtmp:       handlers.NewRtmpHandler(deps.services.Rtmp, pool, logger),
		BBB:        handlers.NewBBBHandler(deps.services.BBB, pool, logger),
		CacheAdmin: handlers.NewCacheAdminHandler(deps.services.Users, deps.services.Users, pool, logger),
	}
	if cfg.Server.EnableHealthCheck {
		deps.handlers.Health = handlers.NewHealthHandler(database, deps.cacheStore, deps.asynqInspector,
			handlers.HealthInfo{Version: Version, Environment: cfg.App.Environment}, logger)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps.handlers)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	chain = append(chain,
		middleware.Timeout(cfg.Server.RequestTimeout),
		middleware.Compression,
		middleware.Principal(middleware.HeaderPrincipal),
	)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, chain...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}
}

func asynqRedisOpt(opts *redis.Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}
}

func cacheTTLs(cfg *config.Config) cache.TTLs {
	return cache.TTLs{
		Short:      cfg.Cache.TTLShort,
		BBB:        cfg.Cache.TTLBBB,
		BBBRunning: cfg.Cache.TTLRunning,
		Medium:     cfg.Cache.TTLMedium,
		Long:       cfg.Cache.TTLLong,
	}.WithDefaults()
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		TableName:   "schema_migrations",
	}, logger, 3)
}
