package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MPC-PolicyService/pkg/types"
)

func TestWithinAny_HalfOpenInterval(t *testing.T) {
	windows := []TimeWindow{{Start: "09:00", End: "17:00"}}

	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{name: "exactly at start is inside", time: "09:00", want: true},
		{name: "strictly between", time: "12:30", want: true},
		{name: "one minute before end", time: "16:59", want: true},
		{name: "exactly at end is outside", time: "17:00", want: false},
		{name: "before start", time: "08:59", want: false},
		{name: "after end", time: "18:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinAny(tt.time, windows))
		})
	}
}

func TestWithinAny_EmptyWindows(t *testing.T) {
	assert.False(t, WithinAny("12:00", nil))
	assert.False(t, WithinAny("12:00", []TimeWindow{}))
}

func TestWithinAny_MultipleWindows(t *testing.T) {
	// Split shift: morning and afternoon, disjoint.
	windows := []TimeWindow{
		{Start: "09:00", End: "12:00"},
		{Start: "14:00", End: "18:00"},
	}

	assert.True(t, WithinAny("10:00", windows))
	assert.True(t, WithinAny("14:00", windows))
	assert.False(t, WithinAny("13:00", windows), "gap between windows")
	assert.False(t, WithinAny("12:00", windows), "end of first window is outside")
}

func TestWithinAny_OverlappingWindowsNotMerged(t *testing.T) {
	windows := []TimeWindow{
		{Start: "09:00", End: "13:00"},
		{Start: "12:00", End: "15:00"},
	}

	// Overlap is fine; membership is a plain OR across windows.
	assert.True(t, WithinAny("12:30", windows))
	assert.True(t, WithinAny("14:59", windows))
	assert.False(t, WithinAny("15:00", windows))
}
