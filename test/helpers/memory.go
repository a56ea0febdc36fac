// test/helpers/memory.go
package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// MemoryDB is an in-memory rendition of the Postgres schema. It enforces the
// same unique and foreign keys, cascades channel deletes to events, and
// counts every repository call so tests can tell cache hits from database
// reads.
type MemoryDB struct {
	mu        sync.Mutex
	users     map[uuid.UUID]domain.User
	channels  map[uuid.UUID]domain.Channel
	events    map[uuid.UUID]domain.Event
	endpoints map[uuid.UUID]domain.RtmpEndpoint
	meetings  map[string]domain.BbbMeeting
	calls     map[string]int
}

// NewMemoryDB returns an empty store
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:     make(map[uuid.UUID]domain.User),
		channels:  make(map[uuid.UUID]domain.Channel),
		events:    make(map[uuid.UUID]domain.Event),
		endpoints: make(map[uuid.UUID]domain.RtmpEndpoint),
		meetings:  make(map[string]domain.BbbMeeting),
		calls:     make(map[string]int),
	}
}

// Calls returns how often op ran, e.g. "events.List"
func (m *MemoryDB) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// ResetCalls zeroes every counter
func (m *MemoryDB) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make(map[string]int)
}

func (m *MemoryDB) Users() ports.UserRepository       { return memUsers{m} }
func (m *MemoryDB) Channels() ports.ChannelRepository { return memChannels{m} }
func (m *MemoryDB) Events() ports.EventRepository     { return memEvents{m} }
func (m *MemoryDB) Endpoints() ports.RtmpRepository   { return memEndpoints{m} }
func (m *MemoryDB) Meetings() ports.MeetingRepository { return memMeetings{m} }

// lock takes the mutex and records the call
func (m *MemoryDB) lock(op string) func() {
	m.mu.Lock()
	m.calls[op]++
	return m.mu.Unlock
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

func conflict(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrConflict)
}

type memUsers struct{ m *MemoryDB }

func (r memUsers) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.User, error) {
	defer r.m.lock("users.FindByID")()
	u, ok := r.m.users[id]
	if !ok {
		return nil, notFound("find user")
	}
	return &u, nil
}

func (r memUsers) FindByKeycloakID(ctx context.Context, q ports.DBTX, keycloakID string) (*domain.User, error) {
	defer r.m.lock("users.FindByKeycloakID")()
	for _, u := range r.m.users {
		if u.KeycloakID == keycloakID {
			return &u, nil
		}
	}
	return nil, notFound("find user by keycloak id")
}

func (r memUsers) List(ctx context.Context, q ports.DBTX, skip, limit int) ([]*domain.User, error) {
	defer r.m.lock("users.List")()
	all := make([]*domain.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		u := u
		all = append(all, &u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	if skip >= len(all) {
		return []*domain.User{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r memUsers) uniqueViolation(user *domain.User) bool {
	for id, u := range r.m.users {
		if id == user.ID {
			continue
		}
		if u.KeycloakID == user.KeycloakID || u.Username == user.Username || u.Email == user.Email {
			return true
		}
	}
	return false
}

func (r memUsers) Create(ctx context.Context, q ports.DBTX, user *domain.User) error {
	defer r.m.lock("users.Create")()
	if _, ok := r.m.users[user.ID]; ok || r.uniqueViolation(user) {
		return conflict("create user")
	}
	r.m.users[user.ID] = *user
	return nil
}

func (r memUsers) Update(ctx context.Context, q ports.DBTX, user *domain.User) error {
	defer r.m.lock("users.Update")()
	if _, ok := r.m.users[user.ID]; !ok {
		return notFound("update user")
	}
	if r.uniqueViolation(user) {
		return conflict("update user")
	}
	r.m.users[user.ID] = *user
	return nil
}

type memChannels struct{ m *MemoryDB }

func (r memChannels) sorted(keep func(domain.Channel) bool) []*domain.Channel {
	out := make([]*domain.Channel, 0)
	for _, c := range r.m.channels {
		if keep(c) {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r memChannels) List(ctx context.Context, q ports.DBTX) ([]*domain.Channel, error) {
	defer r.m.lock("channels.List")()
	return r.sorted(func(domain.Channel) bool { return true }), nil
}

func (r memChannels) ListByCreator(ctx context.Context, q ports.DBTX, creatorID uuid.UUID) ([]*domain.Channel, error) {
	defer r.m.lock("channels.ListByCreator")()
	return r.sorted(func(c domain.Channel) bool { return c.CreatorID == creatorID }), nil
}

func (r memChannels) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Channel, error) {
	defer r.m.lock("channels.FindByID")()
	c, ok := r.m.channels[id]
	if !ok {
		return nil, notFound("find channel")
	}
	return &c, nil
}

func (r memChannels) FindByName(ctx context.Context, q ports.DBTX, name string, creatorID uuid.UUID) (*domain.Channel, error) {
	defer r.m.lock("channels.FindByName")()
	for _, c := range r.m.channels {
		if c.Name == name && c.CreatorID == creatorID {
			return &c, nil
		}
	}
	return nil, notFound("find channel by name")
}

func (r memChannels) taken(channel *domain.Channel) bool {
	for id, c := range r.m.channels {
		if id != channel.ID && c.Name == channel.Name && c.CreatorID == channel.CreatorID {
			return true
		}
	}
	return false
}

func (r memChannels) Create(ctx context.Context, q ports.DBTX, channel *domain.Channel) error {
	defer r.m.lock("channels.Create")()
	if _, ok := r.m.channels[channel.ID]; ok || r.taken(channel) {
		return conflict("create channel")
	}
	if _, ok := r.m.users[channel.CreatorID]; !ok {
		return fmt.Errorf("create channel: %w", domain.ErrValidation)
	}
	r.m.channels[channel.ID] = *channel
	return nil
}

func (r memChannels) Update(ctx context.Context, q ports.DBTX, channel *domain.Channel) error {
	defer r.m.lock("channels.Update")()
	if _, ok := r.m.channels[channel.ID]; !ok {
		return notFound("update channel")
	}
	if r.taken(channel) {
		return conflict("update channel")
	}
	r.m.channels[channel.ID] = *channel
	return nil
}

func (r memChannels) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	defer r.m.lock("channels.Delete")()
	if _, ok := r.m.channels[id]; !ok {
		return notFound("delete channel")
	}
	delete(r.m.channels, id)
	for eventID, e := range r.m.events {
		if e.ChannelID == id {
			delete(r.m.events, eventID)
		}
	}
	return nil
}

func (r memChannels) MeetingIDs(ctx context.Context, q ports.DBTX, channelID uuid.UUID) ([]string, error) {
	defer r.m.lock("channels.MeetingIDs")()
	events := make([]domain.Event, 0)
	for _, e := range r.m.events {
		if e.ChannelID == channelID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartTime.Before(events[j].StartTime) })
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.MeetingID)
	}
	return ids, nil
}

type memEvents struct{ m *MemoryDB }

func copyEvent(e domain.Event) *domain.Event {
	e.OrganizerIDs = append([]uuid.UUID{}, e.OrganizerIDs...)
	return &e
}

func (r memEvents) List(ctx context.Context, q ports.DBTX, filter domain.EventFilter) ([]*domain.Event, error) {
	defer r.m.lock("events.List")()
	out := make([]*domain.Event, 0)
	for _, e := range r.m.events {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.ChannelID != nil && e.ChannelID != *filter.ChannelID {
			continue
		}
		if filter.UserID != nil && !e.IsOrganizer(*filter.UserID) {
			continue
		}
		out = append(out, copyEvent(e))
	}
	descending := filter.Status == domain.EventEnded
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID.String() < out[j].ID.String()
		}
		if descending {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r memEvents) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Event, error) {
	defer r.m.lock("events.FindByID")()
	e, ok := r.m.events[id]
	if !ok {
		return nil, notFound("find event")
	}
	return copyEvent(e), nil
}

func (r memEvents) FindByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.Event, error) {
	defer r.m.lock("events.FindByMeetingID")()
	for _, e := range r.m.events {
		if e.MeetingID == meetingID {
			return copyEvent(e), nil
		}
	}
	return nil, notFound("find event by meeting id")
}

func (r memEvents) checkReferences(event *domain.Event) error {
	if _, ok := r.m.channels[event.ChannelID]; !ok {
		return fmt.Errorf("event channel: %w", domain.ErrValidation)
	}
	for _, id := range event.OrganizerIDs {
		if _, ok := r.m.users[id]; !ok {
			return fmt.Errorf("event organizer: %w", domain.ErrValidation)
		}
	}
	return nil
}

func (r memEvents) Create(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	defer r.m.lock("events.Create")()
	if _, ok := r.m.events[event.ID]; ok {
		return conflict("create event")
	}
	for _, e := range r.m.events {
		if e.MeetingID == event.MeetingID {
			return conflict("create event")
		}
	}
	if err := r.checkReferences(event); err != nil {
		return err
	}
	r.m.events[event.ID] = *copyEvent(*event)
	return nil
}

func (r memEvents) Update(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	defer r.m.lock("events.Update")()
	if _, ok := r.m.events[event.ID]; !ok {
		return notFound("update event")
	}
	if err := r.checkReferences(event); err != nil {
		return err
	}
	r.m.events[event.ID] = *copyEvent(*event)
	return nil
}

func (r memEvents) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	defer r.m.lock("events.Delete")()
	if _, ok := r.m.events[id]; !ok {
		return notFound("delete event")
	}
	delete(r.m.events, id)
	return nil
}

type memEndpoints struct{ m *MemoryDB }

func (r memEndpoints) sorted(keep func(domain.RtmpEndpoint) bool) []*domain.RtmpEndpoint {
	out := make([]*domain.RtmpEndpoint, 0)
	for _, e := range r.m.endpoints {
		if keep(e) {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r memEndpoints) List(ctx context.Context, q ports.DBTX) ([]*domain.RtmpEndpoint, error) {
	defer r.m.lock("endpoints.List")()
	return r.sorted(func(domain.RtmpEndpoint) bool { return true }), nil
}

func (r memEndpoints) ListByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error) {
	defer r.m.lock("endpoints.ListByUser")()
	return r.sorted(func(e domain.RtmpEndpoint) bool { return e.UserID == userID }), nil
}

func (r memEndpoints) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error) {
	defer r.m.lock("endpoints.FindByID")()
	e, ok := r.m.endpoints[id]
	if !ok {
		return nil, notFound("find stream endpoint")
	}
	return &e, nil
}

func (r memEndpoints) keyTaken(endpoint *domain.RtmpEndpoint) bool {
	for id, e := range r.m.endpoints {
		if id != endpoint.ID && e.StreamKey == endpoint.StreamKey {
			return true
		}
	}
	return false
}

func (r memEndpoints) Create(ctx context.Context, q ports.DBTX, endpoint *domain.RtmpEndpoint) error {
	defer r.m.lock("endpoints.Create")()
	if _, ok := r.m.endpoints[endpoint.ID]; ok || r.keyTaken(endpoint) {
		return conflict("create stream endpoint")
	}
	r.m.endpoints[endpoint.ID] = *endpoint
	return nil
}

func (r memEndpoints) Update(ctx context.Context, q ports.DBTX, endpoint *domain.RtmpEndpoint) error {
	defer r.m.lock("endpoints.Update")()
	if _, ok := r.m.endpoints[endpoint.ID]; !ok {
		return notFound("update stream endpoint")
	}
	if r.keyTaken(endpoint) {
		return conflict("update stream endpoint")
	}
	r.m.endpoints[endpoint.ID] = *endpoint
	return nil
}

func (r memEndpoints) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	defer r.m.lock("endpoints.Delete")()
	if _, ok := r.m.endpoints[id]; !ok {
		return notFound("delete stream endpoint")
	}
	delete(r.m.endpoints, id)
	return nil
}

type memMeetings struct{ m *MemoryDB }

func (r memMeetings) Create(ctx context.Context, q ports.DBTX, meeting *domain.BbbMeeting) error {
	defer r.m.lock("meetings.Create")()
	if _, ok := r.m.meetings[meeting.MeetingID]; ok {
		return conflict("create meeting")
	}
	r.m.meetings[meeting.MeetingID] = *meeting
	return nil
}

func (r memMeetings) FindByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.BbbMeeting, error) {
	defer r.m.lock("meetings.FindByMeetingID")()
	m, ok := r.m.meetings[meetingID]
	if !ok {
		return nil, notFound("find meeting")
	}
	return &m, nil
}

func (r memMeetings) Update(ctx context.Context, q ports.DBTX, meeting *domain.BbbMeeting) error {
	defer r.m.lock("meetings.Update")()
	if _, ok := r.m.meetings[meeting.MeetingID]; !ok {
		return notFound("update meeting")
	}
	r.m.meetings[meeting.MeetingID] = *meeting
	return nil
}
