package models

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID        int64
	MeetingID int64
	Content   string
	Assignee  *string
	DueDate   *time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
