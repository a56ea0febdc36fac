// internal/core/cache/policy.go
package cache

import "github.com/google/uuid"

// Key prefixes, one per cached read family
const (
	PrefixUserProfile  = "user_profile"
	PrefixUserKeycloak = "user_keycloak"
	PrefixUserRoles    = "user_roles"
	PrefixUsersList    = "users_list"

	PrefixChannelsAll        = "channels_all"
	PrefixChannelsUser       = "channels_user"
	PrefixChannelsByID       = "channels_by_id"
	PrefixChannelsByName     = "channels_by_name"
	PrefixChannelsRecordings = "channels_recordings"

	PrefixEventsAll      = "events_all"
	PrefixEventsStatus   = "events_status"
	PrefixEventsUpcoming = "events_upcoming"
	PrefixEventsPast     = "events_past"
	PrefixEventsLive     = "events_live"
	PrefixEventsByID     = "events_by_id"
	PrefixEventsChannel  = "events_channel"
	PrefixEventsJoin     = "events_join"

	PrefixRtmpAll  = "rtmp_all"
	PrefixRtmpUser = "rtmp_user"
	PrefixRtmpByID = "rtmp_by_id"

	PrefixBBBMeetingInfo = "bbb:meeting_info"
	PrefixBBBIsRunning   = "bbb:is_running"
	PrefixBBBMeetings    = "bbb:meetings"
	PrefixBBBRecordings  = "bbb:recordings"
)

// All matches every key in a prefix family
func All(prefix string) string {
	return prefix + ":*"
}

// Containing matches keys in a prefix family that carry id
func Containing(prefix, id string) string {
	return prefix + ":*" + EscapePattern(id) + "*"
}

// UserPatterns covers every read a profile or role change can make stale.
// keycloakID may be empty when unknown. Join links embed the display name
// and role-derived password under keys that only carry the event id, so the
// whole family goes.
func UserPatterns(id uuid.UUID, keycloakID string) []string {
	patterns := []string{
		Containing(PrefixUserProfile, id.String()),
		Containing(PrefixUserRoles, id.String()),
	}
	if keycloakID != "" {
		patterns = append(patterns, Containing(PrefixUserKeycloak, keycloakID))
	}
	return append(patterns, All(PrefixUsersList), All(PrefixEventsJoin))
}

// ChannelPatterns covers every channel read. Channel writes are rare so the
// whole family is dropped.
func ChannelPatterns() []string {
	return []string{
		All(PrefixChannelsAll),
		All(PrefixChannelsUser),
		All(PrefixChannelsByID),
		All(PrefixChannelsByName),
		All(PrefixChannelsRecordings),
	}
}

// EventPatterns covers every event list plus the by-id entry when eventID is set
func EventPatterns(eventID *uuid.UUID) []string {
	patterns := []string{
		All(PrefixEventsAll),
		All(PrefixEventsStatus),
		All(PrefixEventsUpcoming),
		All(PrefixEventsPast),
		All(PrefixEventsLive),
		All(PrefixEventsChannel),
		All(PrefixEventsJoin),
	}
	if eventID != nil && *eventID != uuid.Nil {
		patterns = append(patterns, Containing(PrefixEventsByID, eventID.String()))
	}
	return patterns
}

// RtmpPatterns covers every endpoint read. Updates do not always know the
// owner, so user-scoped lists are dropped wholesale.
func RtmpPatterns() []string {
	return []string{
		All(PrefixRtmpAll),
		All(PrefixRtmpByID),
		All(PrefixRtmpUser),
	}
}

// BBBPatterns covers the meeting list and, when meetingID is set, that
// meeting's info, running flag and recordings.
func BBBPatterns(meetingID string) []string {
	patterns := []string{All(PrefixBBBMeetings)}
	if meetingID != "" {
		patterns = append(patterns,
			Containing(PrefixBBBMeetingInfo, meetingID),
			Containing(PrefixBBBIsRunning, meetingID),
			Containing(PrefixBBBRecordings, meetingID),
		)
	}
	return patterns
}
