package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "unpadded hour is normalized", input: "9:30", want: "09:30"},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minutes", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err, "crossing midnight is not supported")
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2026, time.February, 2, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("12:30"), NewTimeString(at))
}

func TestDateString(t *testing.T) {
	d, err := NewDateStringFromString("2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-02-02"), d)

	_, err = NewDateStringFromString("2026-2-2")
	assert.Error(t, err)
	_, err = NewDateStringFromString("02.02.2026")
	assert.Error(t, err)

	assert.True(t, DateString("2026-01-30").IsBefore("2026-02-02"))
	assert.True(t, DateString("2026-02-02").IsAfter("2026-01-30"))
	assert.True(t, DateString("2026-02-02").Equal("2026-02-02"))
	assert.Equal(t, DateString("2026-02-02"), NewDateString(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)))
}
