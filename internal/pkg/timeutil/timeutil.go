package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a clock time is not in HH:MM format.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// DayType classifies a calendar date for slot matching.
type DayType string

const (
	DayTypeOrdinary DayType = "ordinary" // weekday, not a holiday
	DayTypeWeekend  DayType = "weekend"
	DayTypeHoliday  DayType = "holiday"
)

var DayTypeValues = []string{
	string(DayTypeOrdinary),
	string(DayTypeWeekend),
	string(DayTypeHoliday),
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MinutesOfDay converts an HH:MM clock time into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}

	return hour*60 + minute, nil
}

// HoursBetween returns the span between two HH:MM clock times in hours.
// Ordering is not validated: callers that allow end <= start will get a
// non-positive result back.
func HoursBetween(start, end string) (float64, error) {
	startMin, err := MinutesOfDay(start)
	if err != nil {
		return 0, err
	}
	endMin, err := MinutesOfDay(end)
	if err != nil {
		return 0, err
	}
	return float64(endMin-startMin) / 60, nil
}

// ISOWeekday maps Go's Sunday=0 weekday to the stored Monday=1..Sunday=7
// convention. All slot matching goes through this single conversion.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ClassifyDay classifies a date given a holiday calendar keyed by
// YYYY-MM-DD. A listed holiday wins over the weekend classification.
func ClassifyDay(date time.Time, holidays map[string]string) DayType {
	if _, ok := holidays[date.Format(DateLayout)]; ok {
		return DayTypeHoliday
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeOrdinary
}

var dayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the English day name for a Monday=1..Sunday=7 weekday.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return "Unknown"
	}
	return dayNames[dayOfWeek]
}
