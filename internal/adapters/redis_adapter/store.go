// internal/adapters/redis_adapter/store.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// Defaults applied when StoreConfig leaves a field zero
const (
	DefaultConnectAttempts = 5
	DefaultConnectBackoff  = 2 * time.Second
	DefaultOpTimeout       = 5 * time.Second
	DefaultPoolSize        = 20
)

// StoreConfig controls how the store reaches Redis
type StoreConfig struct {
	Options         *redis.Options
	ConnectAttempts int
	ConnectBackoff  time.Duration
	OpTimeout       time.Duration
}

// Store is the Redis implementation of ports.CacheStore. A store whose
// Connect exhausted its retries stays disabled for the life of the process;
// every operation then reports a miss or false.
type Store struct {
	client    *redis.Client
	cfg       StoreConfig
	enabled   atomic.Bool
	closeOnce sync.Once
	logger    *slog.Logger
}

// Statically assert that *Store implements the CacheStore interface.
var _ ports.CacheStore = (*Store)(nil)

// NewStore creates a store that is disabled until Connect succeeds
func NewStore(cfg StoreConfig, logger *slog.Logger) *Store {
	if cfg.Options == nil {
		cfg.Options = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.ConnectAttempts <= 0 {
		cfg.ConnectAttempts = DefaultConnectAttempts
	}
	if cfg.ConnectBackoff <= 0 {
		cfg.ConnectBackoff = DefaultConnectBackoff
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = DefaultOpTimeout
	}
	if cfg.Options.PoolSize == 0 {
		cfg.Options.PoolSize = DefaultPoolSize
	}
	return &Store{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "cache_store")),
	}
}

// NewStoreFromClient wraps an already connected client and starts enabled
func NewStoreFromClient(client *redis.Client, logger *slog.Logger) *Store {
	s := NewStore(StoreConfig{Options: client.Options()}, logger)
	s.client = client
	s.enabled.Store(true)
	return s
}

// Connect pings Redis, retrying with exponential backoff. When every attempt
// fails the store is disabled and the last error is returned.
func (s *Store) Connect(ctx context.Context) error {
	if s.enabled.Load() {
		return nil
	}
	if s.client == nil {
		s.client = redis.NewClient(s.cfg.Options)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.cfg.ConnectBackoff
	eb.Multiplier = 2
	eb.RandomizationFactor = 0
	eb.MaxInterval = s.cfg.ConnectBackoff << uint(s.cfg.ConnectAttempts)
	eb.MaxElapsedTime = 0

	attempt := 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(s.cfg.ConnectAttempts-1)), ctx)
	err := backoff.RetryNotify(func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
		defer cancel()
		return s.client.Ping(pingCtx).Err()
	}, policy, func(err error, wait time.Duration) {
		s.logger.WarnContext(ctx, "redis connect attempt failed",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()))
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "redis unavailable, caching disabled",
			slog.String("addr", s.cfg.Options.Addr),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()))
		_ = s.client.Close()
		return fmt.Errorf("redis connect failed after %d attempts: %w", attempt, err)
	}

	s.enabled.Store(true)
	s.logger.InfoContext(ctx, "redis connected",
		slog.String("addr", s.cfg.Options.Addr),
		slog.Int("pool_size", s.cfg.Options.PoolSize))
	return nil
}

// Enabled reports whether the store is serving requests
func (s *Store) Enabled() bool {
	return s.enabled.Load()
}

// Close releases the connection pool. Safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		wasEnabled := s.enabled.Swap(false)
		if s.client == nil || !wasEnabled {
			return
		}
		if err := s.client.Close(); err != nil {
			s.logger.Warn("redis close failed", slog.String("error", err.Error()))
			return
		}
		s.logger.Info("redis connection closed")
	})
}

// Get returns the stored bytes, or false on a miss or fault
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if !s.enabled.Load() {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return nil, false
		}
		s.logger.WarnContext(ctx, "failed to get cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	s.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return data, true
}

// Set stores value under key with the given expiry
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if !s.enabled.Load() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	s.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return true
}

// Delete removes a single key
func (s *Store) Delete(ctx context.Context, key string) bool {
	if !s.enabled.Load() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to delete cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}
	return true
}

// DeletePattern scans for keys matching pattern and removes them with one DEL
func (s *Store) DeletePattern(ctx context.Context, pattern string) bool {
	if !s.enabled.Load() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to scan keys",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
		return false
	}

	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			s.logger.WarnContext(ctx, "failed to delete keys",
				slog.String("pattern", pattern),
				slog.Int("count", len(keys)),
				slog.String("error", err.Error()))
			return false
		}
	}

	s.logger.DebugContext(ctx, "cache pattern deleted",
		slog.String("pattern", pattern),
		slog.Int("count", len(keys)))
	return true
}

// HealthCheck pings Redis
func (s *Store) HealthCheck(ctx context.Context) bool {
	if !s.enabled.Load() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	return s.client.Ping(ctx).Err() == nil
}

// Stats reports connection pool counters for health endpoints
func (s *Store) Stats() map[string]interface{} {
	if !s.enabled.Load() {
		return map[string]interface{}{"enabled": false}
	}
	ps := s.client.PoolStats()
	return map[string]interface{}{
		"enabled":     true,
		"hits":        ps.Hits,
		"misses":      ps.Misses,
		"timeouts":    ps.Timeouts,
		"total_conns": ps.TotalConns,
		"idle_conns":  ps.IdleConns,
		"stale_conns": ps.StaleConns,
	}
}
