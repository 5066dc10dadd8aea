package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkInterval_Validate(t *testing.T) {
	valid := &WorkInterval{Start: "09:00", End: "18:00"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		interval *WorkInterval
	}{
		{"start after end", &WorkInterval{Start: "18:00", End: "09:00"}},
		{"start equals end", &WorkInterval{Start: "09:00", End: "09:00"}},
		{"bad start format", &WorkInterval{Start: "9:00", End: "18:00"}},
		{"bad end format", &WorkInterval{Start: "09:00", End: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.interval.Validate())
		})
	}
}

func TestWorkInterval_Contains(t *testing.T) {
	interval := &WorkInterval{Start: "09:00", End: "18:00"}

	tests := []struct {
		name            string
		startMinutes    int
		durationMinutes int
		want            bool
	}{
		{"inside", 10 * 60, 60, true},
		{"starts at open", 9 * 60, 60, true},
		{"ends at close", 17 * 60, 60, true},
		{"before open", 8 * 60, 30, false},
		{"crosses open", 8*60 + 45, 30, false},
		{"crosses close", 17*60 + 30, 60, false},
		{"after close", 18 * 60, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Contains(tt.startMinutes, tt.durationMinutes))
		})
	}
}

func TestWeeklySchedule_IntervalFor(t *testing.T) {
	mondayShift := &WorkInterval{Start: "09:00", End: "18:00"}
	saturdayShift := &WorkInterval{Start: "10:00", End: "15:00"}

	schedule := &WeeklySchedule{
		Monday:   mondayShift,
		Saturday: saturdayShift,
	}

	assert.Equal(t, mondayShift, schedule.IntervalFor(time.Monday))
	assert.Equal(t, saturdayShift, schedule.IntervalFor(time.Saturday))
	assert.Nil(t, schedule.IntervalFor(time.Sunday))
	assert.Nil(t, schedule.IntervalFor(time.Wednesday))
}

func TestWeeklySchedule_Validate(t *testing.T) {
	valid := &WeeklySchedule{
		Monday: &WorkInterval{Start: "09:00", End: "18:00"},
	}
	require.NoError(t, valid.Validate())

	invalid := &WeeklySchedule{
		Monday:  &WorkInterval{Start: "09:00", End: "18:00"},
		Tuesday: &WorkInterval{Start: "18:00", End: "09:00"},
	}
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidWorkInterval)
}
