// internal/core/ports/bbb.go
package ports

import (
	"context"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

// BBBClient performs signed calls against the BigBlueButton API
type BBBClient interface {
	Create(ctx context.Context, req domain.CreateMeetingRequest) (*domain.CreateMeetingResult, error)
	End(ctx context.Context, meetingID, password string) error
	IsMeetingRunning(ctx context.Context, meetingID string) (bool, error)
	GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error)
	GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error)
	GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error)
	JoinURL(meetingID, fullName, password, userID string) string
}
