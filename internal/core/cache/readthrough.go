// internal/core/cache/readthrough.go
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

var nullValue = []byte("null")

// Options describes one cached read
type Options struct {
	// Prefix is the key namespace invalidation patterns are written against.
	Prefix string
	// Name identifies the wrapped operation.
	Name string
	TTL  time.Duration
	// Tag is an identifier placed in clear inside the key so narrowed
	// patterns like "events_by_id:*<id>*" can find it.
	Tag string
}

// ReadThrough serves reads from a CacheStore and fills it on a miss.
// Concurrent misses for the same key share one computation.
type ReadThrough struct {
	store  ports.CacheStore
	keys   *KeyDeriver
	flight singleflight.Group
	logger *slog.Logger
}

// Option configures a ReadThrough
type Option func(*ReadThrough)

// WithOpaque replaces the predicate used by CachedDB to drop arguments
func WithOpaque(fn OpaqueFunc) Option {
	return func(rt *ReadThrough) {
		rt.keys = NewKeyDeriver(fn)
	}
}

// NewReadThrough creates a read-through cache over store
func NewReadThrough(store ports.CacheStore, logger *slog.Logger, opts ...Option) *ReadThrough {
	rt := &ReadThrough{
		store:  store,
		keys:   NewKeyDeriver(nil),
		logger: logger.With(slog.String("component", "read_through")),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Store returns the underlying store
func (rt *ReadThrough) Store() ports.CacheStore {
	return rt.store
}

// Keys returns the key deriver
func (rt *ReadThrough) Keys() *KeyDeriver {
	return rt.keys
}

// Cached returns the cached result of fn for args, computing and storing it
// on a miss. Errors from fn are returned as is and never cached; nil results
// are returned but not stored.
func Cached[T any](ctx context.Context, rt *ReadThrough, o Options, fn func() (T, error), args ...any) (T, error) {
	return lookup(ctx, rt, o, rt.keys.Key(o.Prefix, o.Name, o.Tag, args...), fn)
}

// CachedDB is Cached with opaque arguments, such as the persistence handle,
// left out of the key.
func CachedDB[T any](ctx context.Context, rt *ReadThrough, o Options, fn func() (T, error), args ...any) (T, error) {
	return lookup(ctx, rt, o, rt.keys.KeyDB(o.Prefix, o.Name, o.Tag, args...), fn)
}

type flightResult[T any] struct {
	value T
	data  []byte
}

func lookup[T any](ctx context.Context, rt *ReadThrough, o Options, key string, fn func() (T, error)) (T, error) {
	var zero T

	if data, ok := rt.store.Get(ctx, key); ok {
		var out T
		err := json.Unmarshal(data, &out)
		if err == nil {
			rt.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
			return out, nil
		}
		rt.logger.WarnContext(ctx, "discarding unreadable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	ch := rt.flight.DoChan(key, func() (any, error) {
		value, err := fn()
		if err != nil {
			return nil, err
		}
		// The entry outlives the request that computed it.
		return flightResult[T]{value: value, data: rt.fill(context.WithoutCancel(ctx), key, o.TTL, value)}, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	if res.Err != nil {
		// Another caller's cancellation must not fail this one.
		if res.Shared && ctx.Err() == nil && isContextErr(res.Err) {
			rt.logger.DebugContext(ctx, "shared computation cancelled, recomputing", slog.String("key", key))
			value, err := fn()
			if err != nil {
				return zero, err
			}
			rt.fill(ctx, key, o.TTL, value)
			return value, nil
		}
		return zero, res.Err
	}

	fr := res.Val.(flightResult[T])
	if res.Shared && fr.data != nil {
		// Each waiter gets its own copy so callers cannot mutate each other's result.
		var out T
		if err := json.Unmarshal(fr.data, &out); err == nil {
			return out, nil
		}
	}
	return fr.value, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// fill encodes and stores value, returning the encoding or nil if the value
// is not cacheable.
func (rt *ReadThrough) fill(ctx context.Context, key string, ttl time.Duration, value any) []byte {
	data, err := json.Marshal(value)
	if err != nil {
		rt.logger.WarnContext(ctx, "failed to encode cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil
	}
	if bytes.Equal(data, nullValue) {
		return nil
	}
	rt.store.Set(ctx, key, data, ttl)
	return data
}
