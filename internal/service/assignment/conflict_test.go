package assignment

import (
	"testing"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func slot(dayOfWeek int, dayType timeutil.DayType, start, end string) assignment.TimeSlot {
	return assignment.TimeSlot{
		DayOfWeek: dayOfWeek,
		DayType:   dayType,
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindConflicts_TouchingSlotsDoNotConflict(t *testing.T) {
	existing := []assignment.Assignment{{
		ClientID:  "client-a",
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "12:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "12:00", "15:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_OverlappingSlotsConflictOnce(t *testing.T) {
	existing := []assignment.Assignment{{
		ClientID:  "client-a",
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "12:00", "16:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "Monday")
	assert.Contains(t, conflicts[0], "ordinary")
	assert.Contains(t, conflicts[0], "09:00-13:00")
	assert.Contains(t, conflicts[0], "12:00-16:00")
	assert.Contains(t, conflicts[0], "client-a")
}

func TestFindConflicts_DayTypeMismatchNeverConflicts(t *testing.T) {
	existing := []assignment.Assignment{{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(6, timeutil.DayTypeWeekend, "09:00", "13:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(6, timeutil.DayTypeHoliday, "09:00", "13:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_DisjointDateRangesSkipSlotChecks(t *testing.T) {
	existing := []assignment.Assignment{{
		StartDate: date(2025, 1, 1),
		EndDate:   datePtr(2025, 3, 31),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2025, 4, 1),
		EndDate:   datePtr(2025, 6, 30),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_OpenEndedExistingAlwaysOverlapsLaterCandidate(t *testing.T) {
	existing := []assignment.Assignment{{
		StartDate: date(2024, 1, 1), // no end date
		TimeSlots: []assignment.TimeSlot{slot(3, timeutil.DayTypeOrdinary, "08:00", "12:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2030, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(3, timeutil.DayTypeOrdinary, "10:00", "14:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflicts_NoSlotsIsVacuouslyConflictFree(t *testing.T) {
	existing := []assignment.Assignment{{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00")},
	}}
	candidate := assignment.Assignment{StartDate: date(2025, 1, 1)}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_ReportsEveryOverlappingPair(t *testing.T) {
	existing := []assignment.Assignment{
		{
			ClientID:  "client-a",
			StartDate: date(2025, 1, 1),
			TimeSlots: []assignment.TimeSlot{
				slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00"),
				slot(2, timeutil.DayTypeOrdinary, "09:00", "13:00"),
			},
		},
		{
			ClientID:  "client-b",
			StartDate: date(2025, 1, 1),
			TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "10:00", "11:00")},
		},
	}
	candidate := assignment.Assignment{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "10:30", "12:00")},
	}

	conflicts, err := FindConflicts(existing, candidate)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	// Insertion order: first existing assignment first.
	assert.Contains(t, conflicts[0], "client-a")
	assert.Contains(t, conflicts[1], "client-b")
}

func TestFindConflicts_MalformedTimePropagates(t *testing.T) {
	existing := []assignment.Assignment{{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "morning", "13:00")},
	}}
	candidate := assignment.Assignment{
		StartDate: date(2025, 1, 1),
		TimeSlots: []assignment.TimeSlot{slot(1, timeutil.DayTypeOrdinary, "09:00", "13:00")},
	}

	_, err := FindConflicts(existing, candidate)
	assert.ErrorIs(t, err, timeutil.ErrInvalidTimeFormat)
}
