package models

import "time"

type Meeting struct {
	ID            int64
	Title         string
	Date          time.Time
	StartTime     string
	EndTime       string
	Participants  []string
	AudioFilePath *string
	Transcript    *string
	Summary       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Tasks         []*Task
}
