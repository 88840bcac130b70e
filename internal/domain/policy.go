package domain

import (
	"fmt"
	"time"
)

// PolicyKind identifies the variant of a scheduling policy.
type PolicyKind string

const (
	KindAvailability    PolicyKind = "AVAILABILITY"
	KindBlock           PolicyKind = "BLOCK"
	KindOverride        PolicyKind = "OVERRIDE"
	KindDuration        PolicyKind = "DURATION"
	KindAppointmentType PolicyKind = "APPOINTMENT_TYPE"
	KindBookingWindow   PolicyKind = "BOOKING_WINDOW"
)

// PolicyKinds lists all supported kinds in catalog order.
var PolicyKinds = []PolicyKind{
	KindAvailability,
	KindBlock,
	KindOverride,
	KindDuration,
	KindAppointmentType,
	KindBookingWindow,
}

// ParsePolicyKind validates s against the closed set of kinds.
func ParsePolicyKind(s string) (PolicyKind, error) {
	kind := PolicyKind(s)
	for _, known := range PolicyKinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown policy kind %q", s)
}

// Action is a proposed calendar operation evaluated against policies.
type Action string

const (
	ActionBook       Action = "book"
	ActionBlock      Action = "block"
	ActionReschedule Action = "reschedule"
)

// ParseAction validates s against the closed set of actions.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBook, ActionBlock, ActionReschedule:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// Policy is the atomic configuration unit: one stored rule of a fixed kind
// governing a provider's schedule.
//
// ID and Kind are immutable after creation. Data may only be replaced as a
// whole and must stay consistent with Kind. Deleting a policy flips IsActive
// to false; rows are never physically removed.
type Policy struct {
	ID         string
	ProviderID string
	Kind       PolicyKind
	Label      string
	Data       PolicyData
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
