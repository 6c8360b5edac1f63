package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a value does not parse as a
// 24-hour "HH:MM" wall-clock time.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

var timeCodeRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Parse converts a "HH:MM" string into minutes since midnight.
// The result is always in [0, 1439] for valid input.
func Parse(s string) (int, error) {
	if !timeCodeRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	return hours*60 + minutes, nil
}

// Format converts minutes since midnight into a zero-padded "HH:MM"
// string. Used for generating placeholder slots.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsValid reports whether s parses as a time code.
func IsValid(s string) bool {
	return timeCodeRegex.MatchString(s)
}

// Duration returns the elapsed minutes between two time codes.
// A negative result (to before from) is returned as-is and not
// clamped; callers treat it as a data-entry edge case.
func Duration(from, to string) (int, error) {
	fromMins, err := Parse(from)
	if err != nil {
		return 0, err
	}
	toMins, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return toMins - fromMins, nil
}
