// Package timeutil holds the timezone and wall-clock rules shared by the
// meeting and task validators. All dates are stored in UTC; "is this in the
// future" checks are made against JST (fixed UTC+9, no DST).
package timeutil

import (
	"regexp"
	"time"
)

const (
	TimeFormat = "15:04"

	// MaxMeetingDuration caps the span between start and end time.
	MaxMeetingDuration = 3 * time.Hour

	// SlotInterval is the granularity meeting times must align to.
	SlotInterval = 10 * time.Minute
)

var (
	JST = time.FixedZone("JST", 9*60*60)
	UTC = time.UTC
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ToJST converts t to JST. Zero-offset naive times are treated as UTC.
func ToJST(t time.Time) time.Time {
	return t.In(JST)
}

// ToUTC converts t to UTC.
func ToUTC(t time.Time) time.Time {
	return t.In(UTC)
}

// ParseTimestamp parses an ISO-8601 timestamp. Timestamps without a zone
// offset are assumed to be JST wall-clock. The result is normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return ToUTC(t), nil
	}

	t, err = time.ParseInLocation("2006-01-02T15:04:05", s, JST)
	if err == nil {
		return ToUTC(t), nil
	}

	t, err = time.ParseInLocation("2006-01-02", s, JST)
	if err != nil {
		return time.Time{}, err
	}
	return ToUTC(t), nil
}

// IsValidTimeString reports whether s is an HH:MM wall-clock time
// with HH in 00-23 and MM in 00-59.
func IsValidTimeString(s string) bool {
	return timePattern.MatchString(s)
}

// IsOnInterval reports whether the minute component of s is aligned
// to SlotInterval. The caller must have checked the format first.
func IsOnInterval(s string) bool {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return false
	}
	return t.Minute()%int(SlotInterval.Minutes()) == 0
}

// DurationWithinLimit reports whether the span from start to end is at most
// MaxMeetingDuration. Both are HH:MM strings on a common day; ordering is
// the caller's concern.
func DurationWithinLimit(start, end string) bool {
	startTime, err := time.Parse(TimeFormat, start)
	if err != nil {
		return false
	}
	endTime, err := time.Parse(TimeFormat, end)
	if err != nil {
		return false
	}
	return endTime.Sub(startTime) <= MaxMeetingDuration
}
