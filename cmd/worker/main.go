// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/spoutbreeze-be/internal/adapters/bbb"
	"github.com/ammerola/spoutbreeze-be/internal/adapters/db"
	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/config"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/logger"
	"github.com/ammerola/spoutbreeze-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json", logger.WithService("spoutbreeze-worker", "", ""))
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

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat,
		logger.WithService("spoutbreeze-worker", cfg.App.Version, cfg.App.Environment),
		logger.WithSampling(cfg.App.LogSampleRate),
		logger.WithFiles(cfg.App.LogFiles...),
	)
	defer slogger.Close()
	log := slogger.Logger

	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		log.Error("failed to build redis options", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", redisOpts.Addr))

	database, err := initDatabase(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	store := redis_a.NewStore(redis_a.StoreConfig{
		Options:         redisOpts,
		ConnectAttempts: cfg.Redis.ConnectAttempts,
		ConnectBackoff:  cfg.Redis.ConnectBackoff,
		OpTimeout:       cfg.Redis.OpTimeout,
	}, log)
	if cfg.Cache.Enabled {
		if err := store.Connect(ctx); err != nil {
			log.Warn("cache unavailable, invalidation tasks will retry",
				slog.String("error", err.Error()))
		}
	}
	defer store.Close()

	bbbClient, err := bbb.NewClient(bbb.Config{
		ServerBaseURL: cfg.BBB.ServerBaseURL,
		Secret:        cfg.BBB.Secret,
		Timeout:       cfg.BBB.RequestTimeout,
	}, nil, log)
	if err != nil {
		log.Error("failed to initialize bbb client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Failed patterns are retried by the task itself, never re-enqueued
	invalidator := cache.NewInvalidator(store, nil, log)

	eventRepo := db.NewEventRepository(log)
	set := services.NewSet(services.Deps{
		Users:       db.NewUserRepository(log),
		Channels:    db.NewChannelRepository(log),
		Events:      eventRepo,
		Endpoints:   db.NewRtmpRepository(log),
		Meetings:    db.NewMeetingRepository(log),
		BBB:         bbbClient,
		ReadThrough: cache.NewReadThrough(store, log),
		Invalidator: invalidator,
		TTLs: cache.TTLs{
			Short:      cfg.Cache.TTLShort,
			BBB:        cfg.Cache.TTLBBB,
			BBBRunning: cfg.Cache.TTLRunning,
			Medium:     cfg.Cache.TTLMedium,
			Long:       cfg.Cache.TTLLong,
		}.WithDefaults(),
		Event: services.EventConfig{
			MeetingEndedURL: cfg.BBB.MeetingEndedURL,
			Welcome:         cfg.BBB.Welcome,
			Record:          cfg.BBB.Record,
		},
		Logger: log,
	})

	redisOpt := asynq.RedisClientOpt{
		Addr:      redisOpts.Addr,
		Username:  redisOpts.Username,
		Password:  redisOpts.Password,
		DB:        redisOpts.DB,
		TLSConfig: redisOpts.TLSConfig,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(log),
	})

	mux := asynq.NewServeMux()

	invalidationProcessor := workers.NewInvalidationProcessor(invalidator, log)
	mux.HandleFunc(workers.TypeCacheInvalidate, invalidationProcessor.ProcessInvalidate)

	syncProcessor := workers.NewMeetingSyncProcessor(eventRepo, bbbClient, set.BBB, database.Pool(), log)
	mux.HandleFunc(workers.TypeMeetingsSync, syncProcessor.ProcessSync)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(log),
	})
	if _, err := scheduler.Register(cfg.Asynq.SyncInterval, workers.NewMeetingsSyncTask()); err != nil {
		log.Error("failed to register meeting sync schedule", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.String("sync_interval", cfg.Asynq.SyncInterval))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}

	return db.NewDatabase(ctx, dbConfig, logger)
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.Int("retried", retried),
		slog.Int("max_retry", maxRetry),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

var _ asynq.Logger = (*asynqLogger)(nil)
