package report

import (
	"testing"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// April 2025: 30 days, starts on a Tuesday. Mondays fall on the 7th, 14th,
// 21st and 28th; Saturdays on the 5th, 12th, 19th and 26th.
const (
	aprilYear = 2025
	april     = time.April
)

func mondaySlot(start, end string) assignment.TimeSlot {
	return assignment.TimeSlot{
		ID:        "slot-mon",
		DayOfWeek: 1,
		DayType:   timeutil.DayTypeOrdinary,
		StartTime: start,
		EndTime:   end,
	}
}

func TestReconcile_SingleWeekdaySlot(t *testing.T) {
	a := assignment.Assignment{
		ID:        "asg-1",
		WorkerID:  "w-1",
		ClientID:  "c-1",
		TimeSlots: []assignment.TimeSlot{mondaySlot("09:00", "13:00")},
	}

	result, err := Reconcile(a, aprilYear, april, nil, 20.0)
	require.NoError(t, err)

	assert.Equal(t, 16.0, result.CalculatedHours)
	assert.Equal(t, 16.0, result.HoursByDayType["ordinary"])
	assert.Equal(t, 0.0, result.HoursByDayType["weekend"])
	assert.Equal(t, 0.0, result.HoursByDayType["holiday"])
	assert.Equal(t, -4.0, result.ExcessDeficitHours) // deficit
	assert.Equal(t, 20.0, result.AssignedHours)
}

func TestReconcile_ExcessSign(t *testing.T) {
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{mondaySlot("09:00", "13:00")},
	}

	result, err := Reconcile(a, aprilYear, april, nil, 10.0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.ExcessDeficitHours) // excess
}

func TestReconcile_RoundsTotalsToTwoDecimals(t *testing.T) {
	// 4h10m per Monday: 4 Mondays sum to 16.666..., which must round up.
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{mondaySlot("09:00", "13:10")},
	}

	result, err := Reconcile(a, aprilYear, april, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 16.67, result.CalculatedHours)
	assert.Equal(t, 16.67, result.HoursByDayType["ordinary"])
	assert.Equal(t, 16.67, result.ExcessDeficitHours)
}

func TestReconcile_DayCountIntegrity(t *testing.T) {
	holidays := map[string]string{
		"2025-04-19": "Spring Festival", // a Saturday
		"2025-04-21": "Easter Monday",
	}
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{mondaySlot("09:00", "13:00")},
	}

	result, err := Reconcile(a, aprilYear, april, holidays, 0)
	require.NoError(t, err)

	assert.Len(t, result.DailyBreakdown, 30)
	assert.Equal(t, 30, result.WorkingDays+result.WeekendDays+result.HolidayDays)
	assert.Equal(t, 2, result.HolidayDays)

	// Breakdown is chronological.
	assert.Equal(t, "2025-04-01", result.DailyBreakdown[0].Date)
	assert.Equal(t, "2025-04-30", result.DailyBreakdown[29].Date)
	for i := 1; i < len(result.DailyBreakdown); i++ {
		assert.Less(t, result.DailyBreakdown[i-1].Date, result.DailyBreakdown[i].Date)
	}
}

func TestReconcile_HolidayOverridesSlotMatching(t *testing.T) {
	// Easter Monday: the ordinary Monday slot must not apply on the 21st,
	// leaving 3 contributing Mondays.
	holidays := map[string]string{"2025-04-21": "Easter Monday"}
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{mondaySlot("09:00", "13:00")},
	}

	result, err := Reconcile(a, aprilYear, april, holidays, 0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result.CalculatedHours)

	day := result.DailyBreakdown[20] // April 21st
	assert.Equal(t, "2025-04-21", day.Date)
	assert.True(t, day.IsHoliday)
	require.NotNil(t, day.HolidayName)
	assert.Equal(t, "Easter Monday", *day.HolidayName)
	assert.Equal(t, 0.0, day.ScheduledHours)
	assert.Empty(t, day.MatchedSlots)
}

func TestReconcile_EndToEndScenario(t *testing.T) {
	// Monday ordinary 09:00-13:00 plus Saturday weekend 10:00-12:00 over a
	// 30-day month where one of the 4 Saturdays is a listed holiday. The
	// weekend slot does not apply on the holiday Saturday and no
	// holiday-tagged slot exists to cover it.
	holidays := map[string]string{"2025-04-19": "Spring Festival"}
	a := assignment.Assignment{
		ID:       "asg-e2e",
		WorkerID: "w-1",
		ClientID: "c-1",
		TimeSlots: []assignment.TimeSlot{
			mondaySlot("09:00", "13:00"),
			{
				ID:        "slot-sat",
				DayOfWeek: 6,
				DayType:   timeutil.DayTypeWeekend,
				StartTime: "10:00",
				EndTime:   "12:00",
			},
		},
	}

	result, err := Reconcile(a, aprilYear, april, holidays, 20.0)
	require.NoError(t, err)

	assert.Equal(t, 16.0, result.HoursByDayType["ordinary"])
	assert.Equal(t, 6.0, result.HoursByDayType["weekend"]) // 3 non-holiday Saturdays
	assert.Equal(t, 0.0, result.HoursByDayType["holiday"])
	assert.Equal(t, 22.0, result.CalculatedHours)
	assert.Equal(t, 2.0, result.ExcessDeficitHours)
	assert.Equal(t, 1, result.HolidayDays)
	assert.Equal(t, 7, result.WeekendDays)
	assert.Equal(t, 22, result.WorkingDays)

	holidaySaturday := result.DailyBreakdown[18] // April 19th
	assert.Equal(t, "2025-04-19", holidaySaturday.Date)
	assert.Equal(t, "holiday", holidaySaturday.DayType)
	assert.Equal(t, 0.0, holidaySaturday.ScheduledHours)

	workedSaturday := result.DailyBreakdown[11] // April 12th
	assert.Equal(t, "weekend", workedSaturday.DayType)
	assert.Equal(t, 2.0, workedSaturday.ScheduledHours)
	require.Len(t, workedSaturday.MatchedSlots, 1)
	assert.Equal(t, "slot-sat", workedSaturday.MatchedSlots[0].SlotID)
}

func TestReconcile_MultipleSlotsSameDay(t *testing.T) {
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{
			mondaySlot("08:00", "10:00"),
			{
				ID:        "slot-mon-pm",
				DayOfWeek: 1,
				DayType:   timeutil.DayTypeOrdinary,
				StartTime: "14:00",
				EndTime:   "16:30",
			},
		},
	}

	result, err := Reconcile(a, aprilYear, april, nil, 0)
	require.NoError(t, err)

	monday := result.DailyBreakdown[6] // April 7th
	assert.Equal(t, "2025-04-07", monday.Date)
	assert.Equal(t, 4.5, monday.ScheduledHours)
	assert.Len(t, monday.MatchedSlots, 2)
	assert.Equal(t, 18.0, result.CalculatedHours)
}

func TestReconcile_MalformedTimePropagates(t *testing.T) {
	a := assignment.Assignment{
		TimeSlots: []assignment.TimeSlot{mondaySlot("nine", "13:00")},
	}

	_, err := Reconcile(a, aprilYear, april, nil, 0)
	assert.ErrorIs(t, err, timeutil.ErrInvalidTimeFormat)
}
