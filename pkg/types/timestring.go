package types

import (
	"fmt"
	"time"
)

// TimeString represents a wall-clock time in 24-hour "HH:MM" format.
// The format is fixed-width and zero-padded, so lexicographic comparison
// of two TimeStrings is equivalent to chronological comparison.
type TimeString string

const timeLayout = "15:04"

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	// Re-format to normalize; time.Parse accepts "9:30" which would break
	// lexicographic ordering.
	return TimeString(parsed.Format(timeLayout)), nil
}

// String returns the underlying "HH:MM" string.
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps within a single day is not supported: shifting past 23:59
// returns an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}

	return TimeString(shifted.Format(timeLayout)), nil
}
