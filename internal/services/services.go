package services

import (
	"context"
	"errors"

	"github.com/kohakudev/minutes-api/internal/models"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTaskNotFound    = errors.New("task not found")
)

type MeetingService interface {
	// CreateMeeting persists a validated meeting and returns it with the
	// assigned ID and timestamps. Participants are stored as a JSON array
	// text blob but are always presented as an ordered list.
	CreateMeeting(ctx context.Context, meeting *models.Meeting) (*models.Meeting, error)

	// GetMeetings returns a page of meetings. An explicit zero limit
	// returns no rows; limits above the maximum page size are clamped.
	// Meetings in the list carry no tasks.
	GetMeetings(ctx context.Context, skip, limit uint32) ([]*models.Meeting, error)

	// GetMeetingByID returns the meeting with its tasks attached, or
	// ErrMeetingNotFound.
	GetMeetingByID(ctx context.Context, id int64) (*models.Meeting, error)

	// UpdateMeeting replaces every client-writable field of the meeting
	// and returns the stored record, or ErrMeetingNotFound.
	UpdateMeeting(ctx context.Context, id int64, meeting *models.Meeting) (*models.Meeting, error)

	// DeleteMeeting removes the meeting and, via the cascade, its tasks.
	// It returns the deleted record, or ErrMeetingNotFound.
	DeleteMeeting(ctx context.Context, id int64) (*models.Meeting, error)
}

type TaskService interface {
	// CreateTask persists a validated task under task.MeetingID. It
	// returns ErrMeetingNotFound if the owning meeting does not exist.
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// GetTasksByMeetingID returns the tasks of a meeting, oldest first.
	// An unknown meeting ID yields an empty list.
	GetTasksByMeetingID(ctx context.Context, meetingID int64) ([]*models.Task, error)

	// UpdateTask replaces every client-writable field of the task and
	// returns the stored record, or ErrTaskNotFound.
	UpdateTask(ctx context.Context, id int64, task *models.Task) (*models.Task, error)

	// DeleteTask removes the task and returns the deleted record, or
	// ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) (*models.Task, error)
}
