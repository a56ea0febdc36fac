// internal/adapters/bbb/client.go
package bbb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const (
	returnSuccess = "SUCCESS"

	// DefaultTimeout bounds a single API call
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 4 << 20
)

// Config holds the BBB server coordinates
type Config struct {
	// ServerBaseURL is the API root, e.g. https://bbb.example.com/bigbluebutton/api/
	ServerBaseURL string
	Secret        string
	Timeout       time.Duration
}

// Client implements ports.BBBClient over the BBB HTTP API
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
	logger  *slog.Logger
}

var _ ports.BBBClient = (*Client)(nil)

// NewClient creates a BBB API client
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.ServerBaseURL == "" {
		return nil, fmt.Errorf("bbb server base url is required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("bbb secret is required")
	}
	if _, err := url.Parse(cfg.ServerBaseURL); err != nil {
		return nil, fmt.Errorf("invalid bbb server base url: %w", err)
	}

	base := cfg.ServerBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: base,
		secret:  cfg.Secret,
		http:    httpClient,
		logger:  logger.With(slog.String("component", "bbb_client")),
	}, nil
}

// Checksum signs an API call: sha1(call + query + secret), hex encoded
func Checksum(call, query, secret string) string {
	sum := sha1.Sum([]byte(call + query + secret))
	return hex.EncodeToString(sum[:])
}

// signedURL builds the full URL for call with params
func (c *Client) signedURL(call string, params url.Values) string {
	query := params.Encode()
	checksum := Checksum(call, query, c.secret)
	if query == "" {
		return fmt.Sprintf("%s%s?checksum=%s", c.baseURL, call, checksum)
	}
	return fmt.Sprintf("%s%s?%s&checksum=%s", c.baseURL, call, query, checksum)
}

// envelope carries the status fields common to every response
type envelope struct {
	ReturnCode string `xml:"returncode"`
	MessageKey string `xml:"messageKey"`
	Message    string `xml:"message"`
}

func (e envelope) err() error {
	if e.ReturnCode == returnSuccess {
		return nil
	}
	return &domain.APIError{ReturnCode: e.ReturnCode, MessageKey: e.MessageKey, Message: e.Message}
}

// call performs a signed GET and decodes the XML body into out
func (c *Client) call(ctx context.Context, call string, params url.Values, out interface{ status() envelope }) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.signedURL(call, params), nil)
	if err != nil {
		return fmt.Errorf("failed to build bbb %s request: %w", call, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bbb %s request failed: %w", call, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read bbb %s response: %w", call, err)
	}

	c.logger.DebugContext(ctx, "bbb api call",
		slog.String("call", call),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bbb %s returned status %d", call, resp.StatusCode)
	}

	if err := xml.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse bbb %s response: %w", call, err)
	}

	if err := out.status().err(); err != nil {
		c.logger.WarnContext(ctx, "bbb api call failed",
			slog.String("call", call),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

type createResponse struct {
	envelope
	MeetingID            string `xml:"meetingID"`
	InternalMeetingID    string `xml:"internalMeetingID"`
	ParentMeetingID      string `xml:"parentMeetingID"`
	AttendeePW           string `xml:"attendeePW"`
	ModeratorPW          string `xml:"moderatorPW"`
	CreateTime           int64  `xml:"createTime"`
	VoiceBridge          string `xml:"voiceBridge"`
	DialNumber           string `xml:"dialNumber"`
	HasUserJoined        bool   `xml:"hasUserJoined"`
	Duration             int    `xml:"duration"`
	HasBeenForciblyEnded bool   `xml:"hasBeenForciblyEnded"`
}

func (r *createResponse) status() envelope { return r.envelope }

// Create creates (or re-attaches to) a meeting
func (c *Client) Create(ctx context.Context, req domain.CreateMeetingRequest) (*domain.CreateMeetingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("name", req.Name)
	params.Set("meetingID", req.MeetingID)
	setIf(params, "attendeePW", req.AttendeePW)
	setIf(params, "moderatorPW", req.ModeratorPW)
	setIf(params, "welcome", req.Welcome)
	setIf(params, "moderatorOnlyMessage", req.ModeratorOnlyMessage)
	setIf(params, "logo", req.LogoURL)
	if req.MaxParticipants > 0 {
		params.Set("maxParticipants", strconv.Itoa(req.MaxParticipants))
	}
	if req.Duration > 0 {
		params.Set("duration", strconv.Itoa(req.Duration))
	}
	if req.Record {
		params.Set("record", "true")
	}
	if req.AutoStartRecording {
		params.Set("autoStartRecording", "true")
	}
	if req.AllowStartStopRecording {
		params.Set("allowStartStopRecording", "true")
	}
	if req.MeetingEndedURL != "" {
		params.Set("meta_endCallbackUrl", req.MeetingEndedURL)
	}

	var resp createResponse
	if err := c.call(ctx, "create", params, &resp); err != nil {
		return nil, err
	}

	return &domain.CreateMeetingResult{
		MeetingID:            resp.MeetingID,
		InternalMeetingID:    resp.InternalMeetingID,
		ParentMeetingID:      resp.ParentMeetingID,
		AttendeePW:           resp.AttendeePW,
		ModeratorPW:          resp.ModeratorPW,
		CreateTime:           resp.CreateTime,
		VoiceBridge:          resp.VoiceBridge,
		DialNumber:           resp.DialNumber,
		HasUserJoined:        resp.HasUserJoined,
		Duration:             resp.Duration,
		HasBeenForciblyEnded: resp.HasBeenForciblyEnded,
		MessageKey:           resp.MessageKey,
		Message:              resp.Message,
	}, nil
}

type plainResponse struct {
	envelope
}

func (r *plainResponse) status() envelope { return r.envelope }

// End ends a running meeting
func (c *Client) End(ctx context.Context, meetingID, password string) error {
	params := url.Values{}
	params.Set("meetingID", meetingID)
	params.Set("password", password)

	var resp plainResponse
	return c.call(ctx, "end", params, &resp)
}

type runningResponse struct {
	envelope
	Running bool `xml:"running"`
}

func (r *runningResponse) status() envelope { return r.envelope }

// IsMeetingRunning reports whether the meeting has participants
func (c *Client) IsMeetingRunning(ctx context.Context, meetingID string) (bool, error) {
	params := url.Values{}
	params.Set("meetingID", meetingID)

	var resp runningResponse
	if err := c.call(ctx, "isMeetingRunning", params, &resp); err != nil {
		return false, err
	}
	return resp.Running, nil
}

type xmlAttendee struct {
	UserID          string `xml:"userID"`
	FullName        string `xml:"fullName"`
	Role            string `xml:"role"`
	IsPresenter     bool   `xml:"isPresenter"`
	IsListeningOnly bool   `xml:"isListeningOnly"`
	HasJoinedVoice  bool   `xml:"hasJoinedVoice"`
	HasVideo        bool   `xml:"hasVideo"`
}

type xmlMeeting struct {
	MeetingName           string        `xml:"meetingName"`
	MeetingID             string        `xml:"meetingID"`
	InternalMeetingID     string        `xml:"internalMeetingID"`
	CreateTime            int64         `xml:"createTime"`
	Running               bool          `xml:"running"`
	Recording             bool          `xml:"recording"`
	HasBeenForciblyEnded  bool          `xml:"hasBeenForciblyEnded"`
	StartTime             int64         `xml:"startTime"`
	EndTime               int64         `xml:"endTime"`
	ParticipantCount      int           `xml:"participantCount"`
	ListenerCount         int           `xml:"listenerCount"`
	VoiceParticipantCount int           `xml:"voiceParticipantCount"`
	VideoCount            int           `xml:"videoCount"`
	ModeratorCount        int           `xml:"moderatorCount"`
	Attendees             []xmlAttendee `xml:"attendees>attendee"`
}

func (m xmlMeeting) toDomain() domain.MeetingInfo {
	info := domain.MeetingInfo{
		MeetingName:           m.MeetingName,
		MeetingID:             m.MeetingID,
		InternalMeetingID:     m.InternalMeetingID,
		CreateTime:            m.CreateTime,
		Running:               m.Running,
		Recording:             m.Recording,
		HasBeenForciblyEnded:  m.HasBeenForciblyEnded,
		StartTime:             m.StartTime,
		EndTime:               m.EndTime,
		ParticipantCount:      m.ParticipantCount,
		ListenerCount:         m.ListenerCount,
		VoiceParticipantCount: m.VoiceParticipantCount,
		VideoCount:            m.VideoCount,
		ModeratorCount:        m.ModeratorCount,
		Attendees:             make([]domain.Attendee, 0, len(m.Attendees)),
	}
	for _, a := range m.Attendees {
		info.Attendees = append(info.Attendees, domain.Attendee(a))
	}
	return info
}

type meetingInfoResponse struct {
	envelope
	xmlMeeting
}

func (r *meetingInfoResponse) status() envelope { return r.envelope }

// GetMeetingInfo returns the live state of a meeting
func (c *Client) GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error) {
	params := url.Values{}
	params.Set("meetingID", meetingID)
	if password != "" {
		params.Set("password", password)
	}

	var resp meetingInfoResponse
	if err := c.call(ctx, "getMeetingInfo", params, &resp); err != nil {
		return nil, err
	}
	info := resp.xmlMeeting.toDomain()
	return &info, nil
}

type meetingsResponse struct {
	envelope
	Meetings []xmlMeeting `xml:"meetings>meeting"`
}

func (r *meetingsResponse) status() envelope { return r.envelope }

// GetMeetings lists every meeting on the server
func (c *Client) GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error) {
	var resp meetingsResponse
	if err := c.call(ctx, "getMeetings", url.Values{}, &resp); err != nil {
		return nil, err
	}

	meetings := make([]domain.MeetingInfo, 0, len(resp.Meetings))
	for _, m := range resp.Meetings {
		meetings = append(meetings, m.toDomain())
	}
	return meetings, nil
}

type xmlFormat struct {
	Type   string `xml:"type"`
	URL    string `xml:"url"`
	Length int    `xml:"length"`
}

type xmlRecording struct {
	RecordID  string      `xml:"recordID"`
	MeetingID string      `xml:"meetingID"`
	Name      string      `xml:"name"`
	Published bool        `xml:"published"`
	State     string      `xml:"state"`
	StartTime int64       `xml:"startTime"`
	EndTime   int64       `xml:"endTime"`
	Formats   []xmlFormat `xml:"playback>format"`
}

type recordingsResponse struct {
	envelope
	Recordings []xmlRecording `xml:"recordings>recording"`
}

func (r *recordingsResponse) status() envelope { return r.envelope }

// GetRecordings lists recordings of the given meetings
func (c *Client) GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error) {
	recordings := make([]domain.Recording, 0)
	if len(meetingIDs) == 0 {
		return recordings, nil
	}

	params := url.Values{}
	params.Set("meetingID", strings.Join(meetingIDs, ","))

	var resp recordingsResponse
	if err := c.call(ctx, "getRecordings", params, &resp); err != nil {
		return nil, err
	}

	for _, r := range resp.Recordings {
		rec := domain.Recording{
			RecordID:  r.RecordID,
			MeetingID: r.MeetingID,
			Name:      r.Name,
			Published: r.Published,
			State:     r.State,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Playback:  make([]domain.RecordingFormat, 0, len(r.Formats)),
		}
		for _, f := range r.Formats {
			rec.Playback = append(rec.Playback, domain.RecordingFormat(f))
		}
		recordings = append(recordings, rec)
	}
	return recordings, nil
}

// JoinURL returns a signed join link. It performs no request.
func (c *Client) JoinURL(meetingID, fullName, password, userID string) string {
	params := url.Values{}
	params.Set("meetingID", meetingID)
	params.Set("fullName", fullName)
	params.Set("password", password)
	setIf(params, "userID", userID)
	return c.signedURL("join", params)
}

func setIf(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
