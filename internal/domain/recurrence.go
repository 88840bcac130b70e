package domain

import "github.com/m04kA/MPC-PolicyService/pkg/types"

// RecurrenceType identifies how a policy's dates repeat.
type RecurrenceType string

const (
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceBiweekly RecurrenceType = "biweekly"
	RecurrenceMonthly  RecurrenceType = "monthly"
	RecurrenceOnce     RecurrenceType = "once"
)

// Recurrence describes which calendar dates a policy applies to.
// StartDate and EndDate are inclusive bounds; a nil EndDate means open-ended.
// DaysOfWeek uses 0=Sunday through 6=Saturday and is required for weekly and
// biweekly recurrences.
type Recurrence struct {
	Type       RecurrenceType    `json:"type"`
	DaysOfWeek []int             `json:"daysOfWeek,omitempty"`
	StartDate  types.DateString  `json:"startDate"`
	EndDate    *types.DateString `json:"endDate,omitempty"`
}

// MatchesDate reports whether the recurrence applies on the given calendar
// date. dayOfWeek must be the weekday of date (0=Sunday).
//
// Known gaps, kept on purpose:
//   - biweekly is evaluated identically to weekly; there is no
//     alternating-week arithmetic.
//   - monthly always reports no match.
//
// Unrecognized types also report no match rather than failing.
func (r Recurrence) MatchesDate(dayOfWeek int, date types.DateString) bool {
	if date.IsBefore(r.StartDate) {
		return false
	}
	if r.EndDate != nil && date.IsAfter(*r.EndDate) {
		return false
	}

	switch r.Type {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly, RecurrenceBiweekly:
		for _, day := range r.DaysOfWeek {
			if day == dayOfWeek {
				return true
			}
		}
		return false
	case RecurrenceOnce:
		return date.Equal(r.StartDate)
	default:
		return false
	}
}
