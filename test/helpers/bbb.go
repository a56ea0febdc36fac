// test/helpers/bbb.go
package helpers

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

// FakeBBB is an in-memory BBB server implementing ports.BBBClient. Meetings
// run from Create until End or Stop.
type FakeBBB struct {
	mu         sync.Mutex
	meetings   map[string]domain.CreateMeetingRequest
	running    map[string]bool
	recordings map[string][]domain.Recording
	calls      map[string]int

	// Err, when set, is returned by every server call
	Err error
}

// NewFakeBBB returns an empty fake server
func NewFakeBBB() *FakeBBB {
	return &FakeBBB{
		meetings:   make(map[string]domain.CreateMeetingRequest),
		running:    make(map[string]bool),
		recordings: make(map[string][]domain.Recording),
		calls:      make(map[string]int),
	}
}

// Calls returns how often method ran
func (f *FakeBBB) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// Stop ends a meeting server side, as if every moderator left
func (f *FakeBBB) Stop(meetingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running[meetingID] = false
}

// AddRecording publishes a recording for meetingID
func (f *FakeBBB) AddRecording(meetingID string, rec domain.Recording) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.MeetingID = meetingID
	f.recordings[meetingID] = append(f.recordings[meetingID], rec)
}

func (f *FakeBBB) enter(method string) func() {
	f.mu.Lock()
	f.calls[method]++
	return f.mu.Unlock
}

func (f *FakeBBB) Create(ctx context.Context, req domain.CreateMeetingRequest) (*domain.CreateMeetingResult, error) {
	defer f.enter("create")()
	if f.Err != nil {
		return nil, f.Err
	}

	if _, ok := f.meetings[req.MeetingID]; !ok {
		f.meetings[req.MeetingID] = req
	}
	f.running[req.MeetingID] = true

	stored := f.meetings[req.MeetingID]
	return &domain.CreateMeetingResult{
		MeetingID:         req.MeetingID,
		InternalMeetingID: "internal-" + req.MeetingID,
		AttendeePW:        stored.AttendeePW,
		ModeratorPW:       stored.ModeratorPW,
		CreateTime:        time.Now().UnixMilli(),
		VoiceBridge:       "70000",
		Duration:          req.Duration,
	}, nil
}

func (f *FakeBBB) End(ctx context.Context, meetingID, password string) error {
	defer f.enter("end")()
	if f.Err != nil {
		return f.Err
	}

	req, ok := f.meetings[meetingID]
	if !ok {
		return &domain.APIError{ReturnCode: "FAILED", MessageKey: "notFound", Message: "meeting not found"}
	}
	if password != req.ModeratorPW {
		return &domain.APIError{ReturnCode: "FAILED", MessageKey: "invalidPassword", Message: "wrong moderator password"}
	}
	f.running[meetingID] = false
	return nil
}

func (f *FakeBBB) IsMeetingRunning(ctx context.Context, meetingID string) (bool, error) {
	defer f.enter("isMeetingRunning")()
	if f.Err != nil {
		return false, f.Err
	}
	return f.running[meetingID], nil
}

func (f *FakeBBB) info(meetingID string, req domain.CreateMeetingRequest) domain.MeetingInfo {
	return domain.MeetingInfo{
		MeetingName:       req.Name,
		MeetingID:         meetingID,
		InternalMeetingID: "internal-" + meetingID,
		Running:           f.running[meetingID],
		Attendees:         []domain.Attendee{},
	}
}

func (f *FakeBBB) GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error) {
	defer f.enter("getMeetingInfo")()
	if f.Err != nil {
		return nil, f.Err
	}

	req, ok := f.meetings[meetingID]
	if !ok {
		return nil, &domain.APIError{ReturnCode: "FAILED", MessageKey: "notFound", Message: "meeting not found"}
	}
	info := f.info(meetingID, req)
	return &info, nil
}

func (f *FakeBBB) GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error) {
	defer f.enter("getMeetings")()
	if f.Err != nil {
		return nil, f.Err
	}

	out := make([]domain.MeetingInfo, 0, len(f.meetings))
	for id, req := range f.meetings {
		if f.running[id] {
			out = append(out, f.info(id, req))
		}
	}
	return out, nil
}

func (f *FakeBBB) GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error) {
	defer f.enter("getRecordings")()
	if f.Err != nil {
		return nil, f.Err
	}

	out := make([]domain.Recording, 0)
	for _, id := range meetingIDs {
		out = append(out, f.recordings[id]...)
	}
	return out, nil
}

func (f *FakeBBB) JoinURL(meetingID, fullName, password, userID string) string {
	q := url.Values{}
	q.Set("meetingID", meetingID)
	q.Set("fullName", fullName)
	q.Set("password", password)
	if userID != "" {
		q.Set("userID", userID)
	}
	return fmt.Sprintf("https://bbb.test/bigbluebutton/api/join?%s", q.Encode())
}
