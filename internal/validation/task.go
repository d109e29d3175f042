package validation

import (
	"strings"
	"time"

	"github.com/kohakudev/minutes-api/internal/apperr"
	"github.com/kohakudev/minutes-api/internal/models"
	"github.com/kohakudev/minutes-api/internal/timeutil"
)

var allowedStatuses = []string{
	models.StatusPending,
	models.StatusInProgress,
	models.StatusCompleted,
}

type TaskInput struct {
	Content  string
	Assignee *string
	DueDate  *string
	Status   string
}

// Task validates a task create/update payload and returns the due date
// normalized to UTC, or nil when no due date was given. The due date, when
// present, must not be earlier than now in JST.
func Task(in TaskInput, now time.Time) (*time.Time, error) {
	if in.Content == "" || len([]rune(in.Content)) > maxContentLength {
		return nil, apperr.Validationf("content must be between 1 and %d characters", maxContentLength)
	}

	if in.Assignee != nil {
		if !namePattern.MatchString(*in.Assignee) {
			return nil, apperr.Validation("assignee may only contain word characters, hyphens, hiragana, katakana and kanji")
		}
		if len([]rune(*in.Assignee)) > maxNameLength {
			return nil, apperr.Validationf("assignee must be %d characters or less", maxNameLength)
		}
	}

	if !isAllowedStatus(in.Status) {
		return nil, apperr.Validationf("status must be one of %s", strings.Join(allowedStatuses, ", "))
	}

	if in.DueDate == nil {
		return nil, nil
	}
	dueDate, err := timeutil.ParseTimestamp(*in.DueDate)
	if err != nil {
		return nil, apperr.Validationf("invalid date format: %s", *in.DueDate)
	}
	if dueDate.Before(timeutil.ToUTC(now)) {
		return nil, apperr.Validation("past date is not allowed: the due date must be in the future")
	}
	return &dueDate, nil
}

func isAllowedStatus(status string) bool {
	for _, allowed := range allowedStatuses {
		if status == allowed {
			return true
		}
	}
	return false
}
