// Package validation applies the field-level and cross-field rules for
// meeting and task input. Rules run in a fixed order and the first failure
// wins; every failure is an apperr validation error with a client-facing
// message.
package validation

import (
	"regexp"
	"time"

	"github.com/kohakudev/minutes-api/internal/apperr"
	"github.com/kohakudev/minutes-api/internal/timeutil"
)

const (
	maxTitleLength   = 100
	maxContentLength = 1000
	maxParticipants  = 20
	maxNameLength    = 30
)

// namePattern allows word characters, hyphens, hiragana, katakana and kanji
// (CJK unified ideographs plus extension A).
var namePattern = regexp.MustCompile(`^[\w\-\x{3040}-\x{30FF}\x{3400}-\x{4DBF}\x{4E00}-\x{9FFF}]+$`)

type MeetingInput struct {
	Title        string
	Date         string
	StartTime    string
	EndTime      string
	Participants []string
}

// Meeting validates a meeting create/update payload and returns the meeting
// date normalized to UTC. The date must not be earlier than now in JST.
func Meeting(in MeetingInput, now time.Time) (time.Time, error) {
	if in.Title == "" || len([]rune(in.Title)) > maxTitleLength {
		return time.Time{}, apperr.Validationf("title must be between 1 and %d characters", maxTitleLength)
	}

	date, err := timeutil.ParseTimestamp(in.Date)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid date format: %s", in.Date)
	}
	if date.Before(timeutil.ToUTC(now)) {
		return time.Time{}, apperr.Validation("past date is not allowed: the meeting date must be in the future")
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"start_time", in.StartTime},
		{"end_time", in.EndTime},
	} {
		if !timeutil.IsValidTimeString(field.value) {
			return time.Time{}, apperr.Validationf("%s must be in HH:MM format (e.g. 09:30)", field.name)
		}
		if !timeutil.IsOnInterval(field.value) {
			return time.Time{}, apperr.Validationf("%s must be aligned to 10 minute intervals", field.name)
		}
	}

	if in.StartTime >= in.EndTime {
		return time.Time{}, apperr.Validation("end_time must be after start_time")
	}
	if !timeutil.DurationWithinLimit(in.StartTime, in.EndTime) {
		return time.Time{}, apperr.Validation("meeting duration must not exceed 3 hours")
	}

	if len(in.Participants) > maxParticipants {
		return time.Time{}, apperr.Validationf("a meeting can have at most %d participants", maxParticipants)
	}
	for _, participant := range in.Participants {
		if len([]rune(participant)) > maxNameLength {
			return time.Time{}, apperr.Validationf("participant names must be %d characters or less", maxNameLength)
		}
		if !namePattern.MatchString(participant) {
			return time.Time{}, apperr.Validation("participant names may only contain word characters, hyphens, hiragana, katakana and kanji")
		}
	}

	return date, nil
}
