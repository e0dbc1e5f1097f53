package report

import (
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/domain/report"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// Reconcile walks every calendar day of (year, month), classifies it against
// the holiday calendar, matches the assignment's weekly slots on day-of-week
// plus day-type, and totals the scheduled hours against the client's
// contracted hours.
//
// The assignment's own validity window is not consulted here; callers decide
// which assignments are relevant to a month before calling. Slots tagged
// with a day-type other than the day's actual classification never apply: an
// ordinary Monday slot contributes nothing on a Monday that falls on a
// holiday.
func Reconcile(a assignment.Assignment, year int, month time.Month, holidays map[string]string, contractedHours float64) (report.MonthlyReportResult, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	result := report.MonthlyReportResult{
		AssignmentID: a.ID,
		WorkerID:     a.WorkerID,
		ClientID:     a.ClientID,
		PeriodMonth:  int(month),
		PeriodYear:   year,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),

		AssignedHours:  round2(contractedHours),
		HoursByDayType: map[string]float64{},
	}
	if a.WorkerName != nil {
		result.WorkerName = *a.WorkerName
	}
	if a.ClientName != nil {
		result.ClientName = *a.ClientName
	}

	var calculated float64
	hoursByType := map[timeutil.DayType]float64{}

	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		dayType := timeutil.ClassifyDay(date, holidays)
		dayOfWeek := timeutil.ISOWeekday(date)

		switch dayType {
		case timeutil.DayTypeHoliday:
			result.HolidayDays++
		case timeutil.DayTypeWeekend:
			result.WeekendDays++
		default:
			result.WorkingDays++
		}

		day := report.DailyBreakdown{
			Date:      date.Format(timeutil.DateLayout),
			DayOfWeek: dayOfWeek,
			DayName:   timeutil.DayName(dayOfWeek),
			DayType:   string(dayType),
			IsHoliday: dayType == timeutil.DayTypeHoliday,
		}
		if day.IsHoliday {
			name := holidays[day.Date]
			day.HolidayName = &name
		}

		for _, slot := range a.TimeSlots {
			if slot.DayOfWeek != dayOfWeek || slot.DayType != dayType {
				continue
			}
			hours, err := timeutil.HoursBetween(slot.StartTime, slot.EndTime)
			if err != nil {
				return report.MonthlyReportResult{}, err
			}
			day.ScheduledHours += hours
			day.MatchedSlots = append(day.MatchedSlots, report.MatchedSlot{
				SlotID:    slot.ID,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Hours:     hours,
			})
		}

		// Totals round once at the end; rounding per day would drift the
		// month total on repeating fractions.
		calculated += day.ScheduledHours
		hoursByType[dayType] += day.ScheduledHours

		result.DailyBreakdown = append(result.DailyBreakdown, day)
	}

	result.CalculatedHours = round2(calculated)
	result.ExcessDeficitHours = round2(result.CalculatedHours - result.AssignedHours)
	for _, dt := range timeutil.DayTypeValues {
		result.HoursByDayType[dt] = round2(hoursByType[timeutil.DayType(dt)])
	}

	return result, nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
