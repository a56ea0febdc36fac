// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newBenchStore starts miniredis for the lifetime of b
func newBenchStore(b *testing.B) *redis_a.Store {
	b.Helper()

	mr := miniredis.RunT(b)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b.Cleanup(func() { client.Close() })
	return redis_a.NewStoreFromClient(client, quietLogger())
}

// benchStack is the cached service graph over in-memory repositories
type benchStack struct {
	db    *helpers.MemoryDB
	set   *services.Set
	owner *domain.User
}

func newBenchStack(b *testing.B, store *redis_a.Store) *benchStack {
	b.Helper()

	logger := quietLogger()
	db := helpers.NewMemoryDB()
	set := services.NewSet(services.Deps{
		Users:       db.Users(),
		Channels:    db.Channels(),
		Events:      db.Events(),
		Endpoints:   db.Endpoints(),
		Meetings:    db.Meetings(),
		BBB:         helpers.NewFakeBBB(),
		ReadThrough: cache.NewReadThrough(store, logger),
		Invalidator: cache.NewInvalidator(store, nil, logger),
		TTLs:        cache.DefaultTTLs(),
		Logger:      logger,
	})

	owner := helpers.CreateTestUser()
	if err := db.Users().Create(context.Background(), helpers.NewNopDB(), owner); err != nil {
		b.Fatalf("failed to seed owner: %v", err)
	}
	return &benchStack{db: db, set: set, owner: owner}
}

func (s *benchStack) createEvent(b *testing.B, title string) *domain.Event {
	b.Helper()

	event, err := s.set.Events.CreateEvent(context.Background(), helpers.NewNopDB(), domain.EventCreate{
		Title:       title,
		StartTime:   time.Now().UTC().Add(time.Hour),
		ChannelName: "bench",
	}, s.owner.ID)
	if err != nil {
		b.Fatalf("failed to create event: %v", err)
	}
	return event
}
