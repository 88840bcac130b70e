package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/MPC-PolicyService/pkg/types"
)

// FieldError describes one validation failure: the path of the offending
// field inside the payload and a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of failures for one payload. A payload
// either satisfies its variant's shape and cross-field constraints completely
// or validation fails with no partial result.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid policy data: " + strings.Join(parts, "; ")
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParsePolicyData validates an untyped JSON payload against the variant
// selected by kind and returns the typed payload. The embedded discriminant
// must equal kind. On failure the returned error is a ValidationErrors value
// listing every violated rule.
func ParsePolicyData(kind PolicyKind, raw json.RawMessage) (PolicyData, error) {
	if _, err := ParsePolicyKind(string(kind)); err != nil {
		return nil, ValidationErrors{{Field: "kind", Message: err.Error()}}
	}

	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ValidationErrors{{Field: "data", Message: "must be a JSON object"}}
	}
	if probe.Kind != string(kind) {
		return nil, ValidationErrors{{
			Field:   "kind",
			Message: fmt.Sprintf("payload kind %q does not match policy kind %q", probe.Kind, kind),
		}}
	}

	switch kind {
	case KindAvailability:
		var data AvailabilityData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		errs = append(errs, validateRecurrence("recurrence", data.Recurrence)...)
		errs = append(errs, validateTimeWindows("timeWindows", data.TimeWindows)...)
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil

	case KindBlock:
		var data BlockData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		errs = append(errs, validateRecurrence("recurrence", data.Recurrence)...)
		errs = append(errs, validateTimeWindows("timeWindows", data.TimeWindows)...)
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil

	case KindOverride:
		var data OverrideData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		errs = append(errs, validateDate("date", string(data.Date))...)
		if data.Action != OverrideBlock && data.Action != OverrideAvailable {
			errs = append(errs, FieldError{Field: "action", Message: `must be "block" or "available"`})
		}
		errs = append(errs, validateTimeWindows("timeWindows", data.TimeWindows)...)
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil

	case KindDuration:
		var data DurationData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		if data.DefaultLength < MinAppointmentMinutes || data.DefaultLength > MaxAppointmentMinutes {
			errs = append(errs, rangeError("defaultLength", MinAppointmentMinutes, MaxAppointmentMinutes))
		}
		errs = append(errs, validateOptionalBuffer("bufferBefore", data.BufferBefore)...)
		errs = append(errs, validateOptionalBuffer("bufferAfter", data.BufferAfter)...)
		if data.MaxPerDay != nil && (*data.MaxPerDay < MinPerDayLimit || *data.MaxPerDay > MaxPerDayLimit) {
			errs = append(errs, rangeError("maxPerDay", MinPerDayLimit, MaxPerDayLimit))
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil

	case KindAppointmentType:
		var data AppointmentTypeData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		if strings.TrimSpace(data.TypeName) == "" {
			errs = append(errs, FieldError{Field: "typeName", Message: "is required"})
		}
		if data.Duration < MinAppointmentMinutes || data.Duration > MaxAppointmentMinutes {
			errs = append(errs, rangeError("duration", MinAppointmentMinutes, MaxAppointmentMinutes))
		}
		errs = append(errs, validateOptionalBuffer("bufferBefore", data.BufferBefore)...)
		errs = append(errs, validateOptionalBuffer("bufferAfter", data.BufferAfter)...)
		if data.Color != "" && !hexColorPattern.MatchString(data.Color) {
			errs = append(errs, FieldError{Field: "color", Message: "must be a hex RGB color like #4A90D9"})
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil

	case KindBookingWindow:
		var data BookingWindowData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, ValidationErrors{{Field: "data", Message: err.Error()}}
		}
		var errs ValidationErrors
		if data.MinAdvanceHours < 0 {
			errs = append(errs, FieldError{Field: "minAdvanceHours", Message: "must be at least 0"})
		}
		if data.MaxAdvanceDays < MinAdvanceDaysLimit || data.MaxAdvanceDays > MaxAdvanceDaysLimit {
			errs = append(errs, rangeError("maxAdvanceDays", MinAdvanceDaysLimit, MaxAdvanceDaysLimit))
		}
		if len(errs) == 0 && data.MinAdvanceHours > data.MaxAdvanceDays*24 {
			errs = append(errs, FieldError{
				Field:   "minAdvanceHours",
				Message: "must not exceed maxAdvanceDays expressed in hours",
			})
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return data, nil
	}

	// Unreachable: ParsePolicyKind above rejects unknown kinds.
	return nil, ValidationErrors{{Field: "kind", Message: fmt.Sprintf("unknown policy kind %q", kind)}}
}

func rangeError(field string, min, max int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
}

func validateOptionalBuffer(field string, v *int) ValidationErrors {
	if v == nil {
		return nil
	}
	if *v < MinBufferMinutes || *v > MaxBufferMinutes {
		return ValidationErrors{rangeError(field, MinBufferMinutes, MaxBufferMinutes)}
	}
	return nil
}

// validateTime requires a canonical zero-padded "HH:MM" value; anything the
// parser would normalize differently (e.g. "9:30") is rejected so that
// lexicographic comparison stays valid.
func validateTime(field, value string) ValidationErrors {
	normalized, err := types.NewTimeStringFromString(value)
	if err != nil || string(normalized) != value {
		return ValidationErrors{{Field: field, Message: "must be a 24-hour time in HH:MM format"}}
	}
	return nil
}

func validateDate(field, value string) ValidationErrors {
	normalized, err := types.NewDateStringFromString(value)
	if err != nil || string(normalized) != value {
		return ValidationErrors{{Field: field, Message: "must be a date in YYYY-MM-DD format"}}
	}
	return nil
}

func validateTimeWindows(field string, windows []TimeWindow) ValidationErrors {
	var errs ValidationErrors
	if len(windows) == 0 {
		return ValidationErrors{{Field: field, Message: "at least one time window is required"}}
	}
	for i, w := range windows {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		startErrs := validateTime(prefix+".start", string(w.Start))
		endErrs := validateTime(prefix+".end", string(w.End))
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)
		if len(startErrs) == 0 && len(endErrs) == 0 && !w.Start.IsBefore(w.End) {
			errs = append(errs, FieldError{Field: prefix, Message: "start must be before end"})
		}
	}
	return errs
}

func validateRecurrence(field string, r Recurrence) ValidationErrors {
	var errs ValidationErrors

	switch r.Type {
	case RecurrenceDaily, RecurrenceMonthly, RecurrenceOnce:
		// daysOfWeek is ignored for these types.
	case RecurrenceWeekly, RecurrenceBiweekly:
		if len(r.DaysOfWeek) == 0 {
			errs = append(errs, FieldError{
				Field:   field + ".daysOfWeek",
				Message: fmt.Sprintf("is required for %s recurrence", r.Type),
			})
		}
		for i, day := range r.DaysOfWeek {
			if day < MinDayOfWeek || day > MaxDayOfWeek {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("%s.daysOfWeek[%d]", field, i),
					Message: "must be between 0 (Sunday) and 6 (Saturday)",
				})
			}
		}
	default:
		errs = append(errs, FieldError{
			Field:   field + ".type",
			Message: `must be one of "daily", "weekly", "biweekly", "monthly", "once"`,
		})
	}

	errs = append(errs, validateDate(field+".startDate", string(r.StartDate))...)
	if r.EndDate != nil {
		errs = append(errs, validateDate(field+".endDate", string(*r.EndDate))...)
	}

	return errs
}
