package report

import "time"

// MonthlyReport is the persisted summary row for one generated report. The
// daily breakdown is recomputed on demand rather than stored.
type MonthlyReport struct {
	ID                 string
	AssignmentID       string
	PeriodMonth        int
	PeriodYear         int
	AssignedHours      float64
	CalculatedHours    float64
	ExcessDeficitHours float64
	WorkingDays        int
	WeekendDays        int
	HolidayDays        int
	GeneratedAt        time.Time
}
