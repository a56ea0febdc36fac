// internal/core/services/wire.go
package services

import (
	"log/slog"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// Deps are the collaborators the service graph is built from
type Deps struct {
	Users     ports.UserRepository
	Channels  ports.ChannelRepository
	Events    ports.EventRepository
	Endpoints ports.RtmpRepository
	Meetings  ports.MeetingRepository
	BBB       ports.BBBClient

	ReadThrough *cache.ReadThrough
	Invalidator *cache.Invalidator
	TTLs        cache.TTLs
	Event       EventConfig
	Logger      *slog.Logger
}

// Set holds the cached services handed to handlers and workers
type Set struct {
	Users    *CachedUserService
	Channels *CachedChannelService
	Events   *CachedEventService
	Rtmp     *CachedRtmpService
	BBB      *CachedBBBService
}

// NewSet builds the service graph. Plain services call each other through
// the cached BBB service and the cached event write path so that every
// cross-entity write runs its invalidation sweep.
func NewSet(d Deps) *Set {
	bbbPlain := NewBBBService(d.BBB, d.Meetings, d.Logger)
	bbb := NewCachedBBBService(bbbPlain, d.ReadThrough, d.Invalidator, d.TTLs)

	channelPlain := NewChannelService(d.Channels, bbb, d.Logger)
	eventPlain := NewEventService(d.Events, d.Users, channelPlain, bbb, d.Event, d.Logger)
	events := NewCachedEventService(eventPlain, d.ReadThrough, d.Invalidator, d.TTLs)
	bbbPlain.SetEventEnder(events)

	return &Set{
		Users:    NewCachedUserService(NewUserService(d.Users, d.Logger), d.ReadThrough, d.Invalidator, d.TTLs),
		Channels: NewCachedChannelService(channelPlain, d.ReadThrough, d.Invalidator, d.TTLs),
		Events:   events,
		Rtmp:     NewCachedRtmpService(NewRtmpService(d.Endpoints, d.Logger), d.ReadThrough, d.Invalidator, d.TTLs),
		BBB:      bbb,
	}
}
