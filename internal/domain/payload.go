package domain

import "github.com/m04kA/MPC-PolicyService/pkg/types"

// PolicyData is the closed set of payload variants. Each policy kind has
// exactly one implementation; the Conflict Engine type-switches over them and
// must handle (or explicitly ignore) every case.
//
// Every variant carries its own Kind discriminant so the stored JSON is
// self-describing; the discriminant must always equal the owning policy's
// Kind.
type PolicyData interface {
	// DataKind returns the kind this payload variant belongs to.
	DataKind() PolicyKind
}

// AvailabilityData marks recurring windows when the provider IS available.
type AvailabilityData struct {
	Kind        PolicyKind   `json:"kind"`
	Recurrence  Recurrence   `json:"recurrence"`
	TimeWindows []TimeWindow `json:"timeWindows"`
}

func (AvailabilityData) DataKind() PolicyKind { return KindAvailability }

// BlockData marks recurring windows when the provider is NOT available.
type BlockData struct {
	Kind        PolicyKind   `json:"kind"`
	Recurrence  Recurrence   `json:"recurrence"`
	TimeWindows []TimeWindow `json:"timeWindows"`
	Reason      string       `json:"reason,omitempty"`
}

func (BlockData) DataKind() PolicyKind { return KindBlock }

// OverrideAction says whether an override blocks or opens the listed windows.
type OverrideAction string

const (
	OverrideBlock     OverrideAction = "block"
	OverrideAvailable OverrideAction = "available"
)

// OverrideData is a single-date exception intended to supersede recurring
// policies on that date.
type OverrideData struct {
	Kind        PolicyKind       `json:"kind"`
	Date        types.DateString `json:"date"`
	Action      OverrideAction   `json:"action"`
	TimeWindows []TimeWindow     `json:"timeWindows"`
	Reason      string           `json:"reason,omitempty"`
}

func (OverrideData) DataKind() PolicyKind { return KindOverride }

// DurationData holds practice-wide appointment length defaults. It is
// informational: conflict checks do not consult it.
type DurationData struct {
	Kind          PolicyKind `json:"kind"`
	DefaultLength int        `json:"defaultLength"`
	BufferBefore  *int       `json:"bufferBefore,omitempty"`
	BufferAfter   *int       `json:"bufferAfter,omitempty"`
	MaxPerDay     *int       `json:"maxPerDay,omitempty"`
}

func (DurationData) DataKind() PolicyKind { return KindDuration }

// AppointmentTypeData is a catalog entry for a bookable appointment type.
// Informational: conflict checks do not consult it.
type AppointmentTypeData struct {
	Kind         PolicyKind `json:"kind"`
	TypeName     string     `json:"typeName"`
	Duration     int        `json:"duration"`
	BufferBefore *int       `json:"bufferBefore,omitempty"`
	BufferAfter  *int       `json:"bufferAfter,omitempty"`
	Color        string     `json:"color,omitempty"`
}

func (AppointmentTypeData) DataKind() PolicyKind { return KindAppointmentType }

// BookingWindowData bounds how far in advance bookings may be placed.
type BookingWindowData struct {
	Kind            PolicyKind `json:"kind"`
	MinAdvanceHours int        `json:"minAdvanceHours"`
	MaxAdvanceDays  int        `json:"maxAdvanceDays"`
}

func (BookingWindowData) DataKind() PolicyKind { return KindBookingWindow }
