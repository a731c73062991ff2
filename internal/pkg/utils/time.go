package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"clinic-service/internal/pkg/constvars"
)

var clockRegex = regexp.MustCompile(constvars.RegexClock)

// ParseClock splits a wall-clock "HH:MM" value into hour and minute.
func ParseClock(value string) (hour, minute int, err error) {
	if !clockRegex.MatchString(value) {
		return 0, 0, fmt.Errorf("invalid clock value: %q", value)
	}
	parts := strings.Split(value, ":")
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

// FormatClock renders hour/minute back into zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf(constvars.ClockFormat, hour, minute)
}

// ClockBefore reports whether a is strictly earlier than b. Both values are
// zero-padded "HH:MM" so minute-precision comparison works on the numbers.
func ClockBefore(aHour, aMinute, bHour, bMinute int) bool {
	return aHour < bHour || (aHour == bHour && aMinute < bMinute)
}

// AddMinutes advances a wall-clock position, carrying minute overflow into
// the hour.
func AddMinutes(hour, minute, delta int) (int, int) {
	minute += delta
	for minute >= 60 {
		minute -= 60
		hour++
	}
	return hour, minute
}
