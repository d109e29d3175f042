package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohakudev/minutes-api/internal/apperr"
	"github.com/kohakudev/minutes-api/internal/timeutil"
)

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, timeutil.JST)

func validMeetingInput() MeetingInput {
	return MeetingInput{
		Title:        "T",
		Date:         "2026-01-11T10:00:00",
		StartTime:    "10:00",
		EndTime:      "11:00",
		Participants: []string{"A", "B"},
	}
}

func requireValidationError(t *testing.T, err error, fragment string) {
	t.Helper()
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, fragment)
}

func TestMeetingValid(t *testing.T) {
	date, err := Meeting(validMeetingInput(), testNow)
	require.NoError(t, err)

	// 10:00 JST on the 11th is 01:00 UTC.
	assert.Equal(t, time.Date(2026, 1, 11, 1, 0, 0, 0, time.UTC), date)
}

func TestMeetingTitle(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		in := validMeetingInput()
		in.Title = ""
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "title")
	})

	t.Run("too long", func(t *testing.T) {
		in := validMeetingInput()
		in.Title = strings.Repeat("あ", 101)
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "title")
	})

	t.Run("100 runes allowed", func(t *testing.T) {
		in := validMeetingInput()
		in.Title = strings.Repeat("あ", 100)
		_, err := Meeting(in, testNow)
		require.NoError(t, err)
	})
}

func TestMeetingDate(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		in := validMeetingInput()
		in.Date = "2026-01-09T10:00:00"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "past date")
	})

	t.Run("unparsable", func(t *testing.T) {
		in := validMeetingInput()
		in.Date = "next tuesday"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "date format")
	})
}

func TestMeetingTimes(t *testing.T) {
	t.Run("bad format", func(t *testing.T) {
		in := validMeetingInput()
		in.StartTime = "9:5"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "HH:MM")
	})

	t.Run("off interval", func(t *testing.T) {
		in := validMeetingInput()
		in.EndTime = "10:05"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "10 minute")
	})

	t.Run("end before start", func(t *testing.T) {
		in := validMeetingInput()
		in.StartTime = "11:00"
		in.EndTime = "10:00"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "after start_time")
	})

	t.Run("end equals start", func(t *testing.T) {
		in := validMeetingInput()
		in.EndTime = in.StartTime
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "after start_time")
	})

	t.Run("over three hours", func(t *testing.T) {
		in := validMeetingInput()
		in.StartTime = "10:00"
		in.EndTime = "14:00"
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "3 hours")
	})

	t.Run("exactly three hours allowed", func(t *testing.T) {
		in := validMeetingInput()
		in.StartTime = "10:00"
		in.EndTime = "13:00"
		_, err := Meeting(in, testNow)
		require.NoError(t, err)
	})
}

func TestMeetingParticipants(t *testing.T) {
	t.Run("21 entries rejected", func(t *testing.T) {
		in := validMeetingInput()
		in.Participants = make([]string, 21)
		for i := range in.Participants {
			in.Participants[i] = "A"
		}
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "20")
	})

	t.Run("20 entries allowed", func(t *testing.T) {
		in := validMeetingInput()
		in.Participants = make([]string, 20)
		for i := range in.Participants {
			in.Participants[i] = "A"
		}
		_, err := Meeting(in, testNow)
		require.NoError(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		in := validMeetingInput()
		in.Participants = []string{strings.Repeat("山", 31)}
		_, err := Meeting(in, testNow)
		requireValidationError(t, err, "30")
	})

	t.Run("charset", func(t *testing.T) {
		in := validMeetingInput()
		in.Participants = []string{"山田-太郎", "すずき", "カトウ", "Alice_1"}
		_, err := Meeting(in, testNow)
		require.NoError(t, err)

		for _, bad := range []string{"A B", "a@b", ""} {
			in.Participants = []string{bad}
			_, err = Meeting(in, testNow)
			requireValidationError(t, err, "participant")
		}
	})

	t.Run("empty list allowed", func(t *testing.T) {
		in := validMeetingInput()
		in.Participants = nil
		_, err := Meeting(in, testNow)
		require.NoError(t, err)
	})
}
