package domain

import "github.com/m04kA/MPC-PolicyService/pkg/types"

// TimeWindow is a half-open clock-time interval [Start, End).
// Start must be strictly before End; windows never span midnight.
type TimeWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Contains reports whether t falls inside the window. The interval is
// half-open: t == Start is inside, t == End is not.
func (w TimeWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// WithinAny reports whether t falls inside at least one of the windows.
// An empty window list always reports false.
func WithinAny(t types.TimeString, windows []TimeWindow) bool {
	for _, w := range windows {
		if w.Contains(t) {
			return true
		}
	}
	return false
}
