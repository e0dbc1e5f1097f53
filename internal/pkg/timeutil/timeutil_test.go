package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"9:5", 545, false}, // single digits still parse
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"0900", 0, true},
		{"09:00:00", 0, true},
		{"nine:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := MinutesOfDay(tt.clock)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "clock %q", tt.clock)
			continue
		}
		require.NoError(t, err, "clock %q", tt.clock)
		assert.Equal(t, tt.want, got, "clock %q", tt.clock)
	}
}

func TestHoursBetween(t *testing.T) {
	got, err := HoursBetween("09:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = HoursBetween("10:00", "12:30")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	// Ordering is the caller's problem; a reversed span goes negative.
	got, err = HoursBetween("13:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, -4.0, got)

	_, err = HoursBetween("x", "09:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = HoursBetween("09:00", "x")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestISOWeekday(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i+1, ISOWeekday(monday.AddDate(0, 0, i)))
	}
}

func TestClassifyDay(t *testing.T) {
	holidays := map[string]string{
		"2025-06-07": "Midsummer", // a Saturday
		"2025-06-09": "Whit Monday",
	}

	// Holiday beats weekend.
	assert.Equal(t, DayTypeHoliday, ClassifyDay(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), holidays))
	assert.Equal(t, DayTypeHoliday, ClassifyDay(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), holidays))
	assert.Equal(t, DayTypeWeekend, ClassifyDay(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), holidays))
	assert.Equal(t, DayTypeOrdinary, ClassifyDay(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), holidays))
	assert.Equal(t, DayTypeOrdinary, ClassifyDay(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), nil))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(1))
	assert.Equal(t, "Sunday", DayName(7))
	assert.Equal(t, "Unknown", DayName(0))
	assert.Equal(t, "Unknown", DayName(8))
}
