package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidTimeString(t *testing.T) {
	valid := []string{"00:00", "09:30", "10:05", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidTimeString(s), s)
	}

	invalid := []string{"9:5", "9:30", "09:3", "24:00", "10:60", "1000", "", "10:00:00"}
	for _, s := range invalid {
		assert.False(t, IsValidTimeString(s), s)
	}
}

func TestIsOnInterval(t *testing.T) {
	aligned := []string{"10:00", "10:10", "10:30", "23:50"}
	for _, s := range aligned {
		assert.True(t, IsOnInterval(s), s)
	}

	misaligned := []string{"10:05", "09:15", "23:59"}
	for _, s := range misaligned {
		assert.False(t, IsOnInterval(s), s)
	}
}

func TestDurationWithinLimit(t *testing.T) {
	assert.True(t, DurationWithinLimit("10:00", "11:00"))
	assert.True(t, DurationWithinLimit("10:00", "13:00"))
	assert.False(t, DurationWithinLimit("10:00", "13:10"))
	assert.False(t, DurationWithinLimit("10:00", "14:00"))
}

func TestParseTimestamp(t *testing.T) {
	t.Run("rfc3339 with offset", func(t *testing.T) {
		parsed, err := ParseTimestamp("2026-09-01T10:00:00+09:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("zone-less assumed JST", func(t *testing.T) {
		parsed, err := ParseTimestamp("2026-09-01T10:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("date only", func(t *testing.T) {
		parsed, err := ParseTimestamp("2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestamp("not a date")
		require.Error(t, err)
	})
}

func TestTimezoneConversion(t *testing.T) {
	noon := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	jst := ToJST(noon)
	assert.Equal(t, 21, jst.Hour())
	assert.True(t, jst.Equal(noon))

	assert.True(t, ToUTC(jst).Equal(noon))
	assert.Equal(t, time.UTC, ToUTC(jst).Location())
}
