package bbb_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/adapters/bbb"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

const testSecret = "s3cr3t"

// bbbServer verifies checksums and answers with canned XML per call
func bbbServer(t *testing.T, responses map[string]string) (*httptest.Server, *[]*url.URL) {
	t.Helper()

	seen := make([]*url.URL, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL)
		call := strings.TrimPrefix(r.URL.Path, "/bigbluebutton/api/")

		raw := r.URL.RawQuery
		idx := strings.LastIndex(raw, "checksum=")
		if idx < 0 {
			http.Error(w, "missing checksum", http.StatusBadRequest)
			return
		}
		query := strings.TrimSuffix(raw[:idx], "&")
		if bbb.Checksum(call, query, testSecret) != raw[idx+len("checksum="):] {
			fmt.Fprint(w, `<response><returncode>FAILED</returncode><messageKey>checksumError</messageKey><message>bad checksum</message></response>`)
			return
		}

		body, ok := responses[call]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newClient(t *testing.T, srv *httptest.Server, secret string) *bbb.Client {
	t.Helper()
	c, err := bbb.NewClient(bbb.Config{
		ServerBaseURL: srv.URL + "/bigbluebutton/api/",
		Secret:        secret,
	}, srv.Client(), helpers.TestLogger())
	require.NoError(t, err)
	return c
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "9255434d2d195a80e7888cf8b5a38ce8548a6b1e",
		bbb.Checksum("isMeetingRunning", "meetingID=abc", "secret"))
	assert.Len(t, bbb.Checksum("create", "", "x"), 40)
	assert.NotEqual(t, bbb.Checksum("create", "a=1", "x"), bbb.Checksum("end", "a=1", "x"))
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  bbb.Config
	}{
		{name: "missing_url", cfg: bbb.Config{Secret: "x"}},
		{name: "missing_secret", cfg: bbb.Config{ServerBaseURL: "https://bbb.example.com/bigbluebutton/api/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bbb.NewClient(tt.cfg, nil, helpers.TestLogger())
			assert.Error(t, err)
		})
	}
}

func TestClient_Create(t *testing.T) {
	srv, seen := bbbServer(t, map[string]string{
		"create": `<response>
			<returncode>SUCCESS</returncode>
			<meetingID>standup_1a2b3c4d</meetingID>
			<internalMeetingID>int-123</internalMeetingID>
			<attendeePW>ap</attendeePW>
			<moderatorPW>mp</moderatorPW>
			<createTime>1700000000000</createTime>
			<voiceBridge>70001</voiceBridge>
			<hasUserJoined>false</hasUserJoined>
			<duration>0</duration>
			<hasBeenForciblyEnded>false</hasBeenForciblyEnded>
			<messageKey></messageKey>
			<message></message>
		</response>`,
	})
	c := newClient(t, srv, testSecret)

	res, err := c.Create(context.Background(), domain.CreateMeetingRequest{
		Name:        "Weekly Standup",
		MeetingID:   "standup_1a2b3c4d",
		AttendeePW:  "ap",
		ModeratorPW: "mp",
		Record:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "int-123", res.InternalMeetingID)
	assert.Equal(t, int64(1700000000000), res.CreateTime)
	assert.Equal(t, "70001", res.VoiceBridge)

	require.Len(t, *seen, 1)
	q := (*seen)[0].Query()
	assert.Equal(t, "Weekly Standup", q.Get("name"))
	assert.Equal(t, "true", q.Get("record"))
	assert.Empty(t, q.Get("welcome"), "unset optional params are omitted")
}

func TestClient_CreateRejectsInvalidRequest(t *testing.T) {
	srv, seen := bbbServer(t, nil)
	c := newClient(t, srv, testSecret)

	_, err := c.Create(context.Background(), domain.CreateMeetingRequest{Name: "no id"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, *seen)
}

func TestClient_FailedReturnCode(t *testing.T) {
	srv, _ := bbbServer(t, map[string]string{
		"getMeetingInfo": `<response><returncode>FAILED</returncode><messageKey>notFound</messageKey><message>We could not find a meeting with that meeting ID</message></response>`,
	})
	c := newClient(t, srv, testSecret)

	_, err := c.GetMeetingInfo(context.Background(), "missing", "mp")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "FAILED", apiErr.ReturnCode)
	assert.Equal(t, "notFound", apiErr.MessageKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_WrongSecret(t *testing.T) {
	srv, _ := bbbServer(t, map[string]string{
		"isMeetingRunning": `<response><returncode>SUCCESS</returncode><running>true</running></response>`,
	})
	c := newClient(t, srv, "not-the-secret")

	_, err := c.IsMeetingRunning(context.Background(), "abc")
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "checksumError", apiErr.MessageKey)
}

func TestClient_IsMeetingRunning(t *testing.T) {
	srv, _ := bbbServer(t, map[string]string{
		"isMeetingRunning": `<response><returncode>SUCCESS</returncode><running>true</running></response>`,
	})
	c := newClient(t, srv, testSecret)

	running, err := c.IsMeetingRunning(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, running)
}

func TestClient_HTTPError(t *testing.T) {
	srv, _ := bbbServer(t, map[string]string{})
	c := newClient(t, srv, testSecret)

	err := c.End(context.Background(), "abc", "mp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_GetMeetingsAndInfo(t *testing.T) {
	meeting := `<meetingName>Standup</meetingName>
		<meetingID>standup_1</meetingID>
		<internalMeetingID>int-1</internalMeetingID>
		<running>true</running>
		<participantCount>2</participantCount>
		<moderatorCount>1</moderatorCount>
		<attendees>
			<attendee><userID>u1</userID><fullName>Ada</fullName><role>MODERATOR</role><isPresenter>true</isPresenter></attendee>
			<attendee><userID>u2</userID><fullName>Grace</fullName><role>VIEWER</role><hasVideo>true</hasVideo></attendee>
		</attendees>`

	srv, _ := bbbServer(t, map[string]string{
		"getMeetings":    `<response><returncode>SUCCESS</returncode><meetings><meeting>` + meeting + `</meeting></meetings></response>`,
		"getMeetingInfo": `<response><returncode>SUCCESS</returncode>` + meeting + `</response>`,
	})
	c := newClient(t, srv, testSecret)

	meetings, err := c.GetMeetings(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "standup_1", meetings[0].MeetingID)
	assert.Len(t, meetings[0].Attendees, 2)

	info, err := c.GetMeetingInfo(context.Background(), "standup_1", "mp")
	require.NoError(t, err)
	assert.True(t, info.Running)
	assert.Equal(t, 2, info.ParticipantCount)
	assert.Equal(t, "MODERATOR", info.Attendees[0].Role)
	assert.True(t, info.Attendees[1].HasVideo)
}

func TestClient_GetRecordings(t *testing.T) {
	srv, seen := bbbServer(t, map[string]string{
		"getRecordings": `<response><returncode>SUCCESS</returncode><recordings>
			<recording>
				<recordID>rec-1</recordID><meetingID>m1</meetingID><name>Standup</name>
				<published>true</published><state>published</state>
				<startTime>1700000000000</startTime><endTime>1700000360000</endTime>
				<playback><format><type>presentation</type><url>https://bbb.example.com/playback/rec-1</url><length>6</length></format></playback>
			</recording>
		</recordings></response>`,
	})
	c := newClient(t, srv, testSecret)

	t.Run("empty_ids_skip_the_call", func(t *testing.T) {
		recs, err := c.GetRecordings(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, recs)
		assert.Empty(t, *seen)
	})

	t.Run("ids_are_comma_joined", func(t *testing.T) {
		recs, err := c.GetRecordings(context.Background(), []string{"m1", "m2"})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "rec-1", recs[0].RecordID)
		require.Len(t, recs[0].Playback, 1)
		assert.Equal(t, "presentation", recs[0].Playback[0].Type)
		assert.Equal(t, "m1,m2", (*seen)[0].Query().Get("meetingID"))
	})
}

func TestClient_JoinURL(t *testing.T) {
	c, err := bbb.NewClient(bbb.Config{
		ServerBaseURL: "https://bbb.example.com/bigbluebutton/api",
		Secret:        testSecret,
	}, nil, helpers.TestLogger())
	require.NoError(t, err)

	link := c.JoinURL("standup_1", "Ada Lovelace", "ap", "")
	u, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "/bigbluebutton/api/join", u.Path)
	assert.Equal(t, "Ada Lovelace", u.Query().Get("fullName"))
	assert.False(t, u.Query().Has("userID"))

	query := u.RawQuery[:strings.LastIndex(u.RawQuery, "&checksum=")]
	assert.Equal(t, bbb.Checksum("join", query, testSecret), u.Query().Get("checksum"))
}
