package assignment

import (
	"time"

	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
)

// Assignment is a worker-to-client engagement over a date range. EndDate nil
// means open-ended. Deactivation is soft so historical reconciliation keeps
// working.
type Assignment struct {
	ID        string
	WorkerID  string
	ClientID  string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	TimeSlots []TimeSlot

	// DTO
	WorkerName *string
	ClientName *string
}

// TimeSlot is a recurring weekly commitment. Slots only exist as part of an
// assignment and are replaced wholesale on edit.
type TimeSlot struct {
	ID           string
	AssignmentID string
	DayOfWeek    int // 1=Monday, ..., 7=Sunday
	DayType      timeutil.DayType
	StartTime    string // HH:MM
	EndTime      string // HH:MM, strictly after StartTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CoversDate reports whether the assignment validity window contains the
// given date. An absent end date is treated as unbounded.
func (a Assignment) CoversDate(date time.Time) bool {
	if date.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && date.After(*a.EndDate) {
		return false
	}
	return true
}

// OverlapsRange reports whether the assignment validity window intersects
// [start, end]. A nil end means the range is open-ended.
func (a Assignment) OverlapsRange(start time.Time, end *time.Time) bool {
	if end != nil && a.StartDate.After(*end) {
		return false
	}
	if a.EndDate != nil && start.After(*a.EndDate) {
		return false
	}
	return true
}
