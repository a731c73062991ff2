package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("Valid Values", func(t *testing.T) {
		hour, minute, err := ParseClock("09:05")
		require.NoError(t, err)
		assert.Equal(t, 9, hour)
		assert.Equal(t, 5, minute)

		hour, minute, err = ParseClock("23:59")
		require.NoError(t, err)
		assert.Equal(t, 23, hour)
		assert.Equal(t, 59, minute)
	})

	t.Run("Invalid Values", func(t *testing.T) {
		invalid := []string{"24:00", "9:00", "09:60", "0900", "9am", "", "09:0"}
		for _, value := range invalid {
			_, _, err := ParseClock(value)
			assert.Error(t, err, "value %q should not parse", value)
		}
	})
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(9, 5))
	assert.Equal(t, "00:00", FormatClock(0, 0))
	assert.Equal(t, "17:30", FormatClock(17, 30))
}

func TestClockBefore(t *testing.T) {
	assert.True(t, ClockBefore(9, 0, 9, 30))
	assert.True(t, ClockBefore(9, 59, 10, 0))
	assert.False(t, ClockBefore(9, 30, 9, 30))
	assert.False(t, ClockBefore(10, 0, 9, 59))
}

func TestAddMinutes(t *testing.T) {
	hour, minute := AddMinutes(9, 0, 30)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	hour, minute = AddMinutes(9, 45, 30)
	assert.Equal(t, 10, hour)
	assert.Equal(t, 15, minute)

	hour, minute = AddMinutes(9, 0, 90)
	assert.Equal(t, 10, hour)
	assert.Equal(t, 30, minute)
}
