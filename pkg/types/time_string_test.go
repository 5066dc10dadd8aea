package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	for _, valid := range []TimeString{"00:00", "09:30", "18:00", "23:59"} {
		assert.NoError(t, valid.Validate(), "expected %q to be valid", valid)
	}

	for _, invalid := range []TimeString{"", "9:30", "24:00", "12:60", "12-30", "12:30:00", "ab:cd"} {
		assert.ErrorIs(t, invalid.Validate(), ErrInvalidTimeString, "expected %q to be invalid", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, time.September, 7, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:05"), ts)

	_, err = NewTimeStringFromString("14:5")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	tests := []struct {
		value TimeString
		want  int
	}{
		{"00:00", 0},
		{"09:30", 9*60 + 30},
		{"23:59", 23*60 + 59},
	}

	for _, tt := range tests {
		minutes, err := tt.value.MinutesOfDay()
		require.NoError(t, err)
		assert.Equal(t, tt.want, minutes)
	}

	_, err := TimeString("25:00").MinutesOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	ts, err = TimeString("09:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	// выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("18:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
