package types

import (
	"fmt"
	"time"
)

// DateString represents a calendar date in "YYYY-MM-DD" format.
// Like TimeString, the fixed-width zero-padded format makes lexicographic
// comparison equivalent to chronological comparison.
type DateString string

const dateLayout = "2006-01-02"

// NewDateString builds a DateString from the calendar-date part of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString validates s and returns it as a DateString.
func NewDateStringFromString(s string) (DateString, error) {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateString(parsed.Format(dateLayout)), nil
}

// String returns the underlying "YYYY-MM-DD" string.
func (d DateString) String() string {
	return string(d)
}

// IsBefore reports whether d is strictly earlier than other.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is strictly later than other.
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Equal reports whether d and other name the same calendar date.
func (d DateString) Equal(other DateString) bool {
	return string(d) == string(other)
}
