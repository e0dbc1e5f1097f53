package report

import (
	"fmt"
	"time"

	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	AssignmentID string `json:"assignment_id"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MatchedSlot identifies a time slot that contributed hours to a day.
type MatchedSlot struct {
	SlotID    string  `json:"slot_id"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hours     float64 `json:"hours"`
}

// DailyBreakdown is one calendar day of the reconciled month.
type DailyBreakdown struct {
	Date           string        `json:"date"`
	DayOfWeek      int           `json:"day_of_week"` // 1=Monday, ..., 7=Sunday
	DayName        string        `json:"day_name"`
	DayType        string        `json:"day_type"`
	IsHoliday      bool          `json:"is_holiday"`
	HolidayName    *string       `json:"holiday_name,omitempty"`
	ScheduledHours float64       `json:"scheduled_hours"`
	MatchedSlots   []MatchedSlot `json:"matched_slots,omitempty"`
}

// MonthlyReportResult compares the scheduled hours of one assignment over a
// month against the client's contracted hours.
type MonthlyReportResult struct {
	AssignmentID string `json:"assignment_id"`
	WorkerID     string `json:"worker_id"`
	WorkerName   string `json:"worker_name,omitempty"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name,omitempty"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`
	GeneratedAt  string `json:"generated_at"`

	AssignedHours      float64 `json:"assigned_hours"`
	CalculatedHours    float64 `json:"calculated_hours"`
	ExcessDeficitHours float64 `json:"excess_deficit_hours"` // positive = excess, negative = deficit

	WorkingDays int `json:"working_days"`
	WeekendDays int `json:"weekend_days"`
	HolidayDays int `json:"holiday_days"`

	HoursByDayType map[string]float64 `json:"hours_by_day_type"`

	DailyBreakdown []DailyBreakdown `json:"daily_breakdown"`
}

type ExportResponse struct {
	FileURL string `json:"file_url"`
}

// MonthlyReportSummary is the persisted summary row as served to admins.
type MonthlyReportSummary struct {
	ID                 string  `json:"id"`
	AssignmentID       string  `json:"assignment_id"`
	PeriodMonth        int     `json:"period_month"`
	PeriodYear         int     `json:"period_year"`
	AssignedHours      float64 `json:"assigned_hours"`
	CalculatedHours    float64 `json:"calculated_hours"`
	ExcessDeficitHours float64 `json:"excess_deficit_hours"`
	WorkingDays        int     `json:"working_days"`
	WeekendDays        int     `json:"weekend_days"`
	HolidayDays        int     `json:"holiday_days"`
	GeneratedAt        string  `json:"generated_at"`
}
