package assignment

import (
	"fmt"
	"strings"

	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type TimeSlotRequest struct {
	DayOfWeek *int   `json:"day_of_week"`
	DayType   string `json:"day_type"`
	StartTime string `json:"start_time"` // HH:MM format
	EndTime   string `json:"end_time"`   // HH:MM format
}

// validate appends slot-level errors using an index-prefixed field name so a
// bad slot inside a batch is addressable.
func (r *TimeSlotRequest) validate(idx int, errs validator.ValidationErrors) validator.ValidationErrors {
	field := func(name string) string {
		return fmt.Sprintf("time_slots[%d].%s", idx, name)
	}

	if r.DayOfWeek == nil {
		errs = append(errs, validator.ValidationError{
			Field:   field("day_of_week"),
			Message: "day_of_week is required",
		})
	} else if *r.DayOfWeek < 1 || *r.DayOfWeek > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   field("day_of_week"),
			Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
		})
	}

	if validator.IsEmpty(r.DayType) {
		errs = append(errs, validator.ValidationError{
			Field:   field("day_type"),
			Message: "day_type is required",
		})
	} else if !validator.IsInSlice(r.DayType, timeutil.DayTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   field("day_type"),
			Message: "day_type must be one of: " + strings.Join(timeutil.DayTypeValues, ", "),
		})
	}

	startValid := false
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   field("start_time"),
			Message: "start_time is required",
		})
	} else if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   field("start_time"),
			Message: "start_time must be a valid time in HH:MM format",
		})
	} else {
		startValid = true
	}

	endValid := false
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   field("end_time"),
			Message: "end_time is required",
		})
	} else if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   field("end_time"),
			Message: "end_time must be a valid time in HH:MM format",
		})
	} else {
		endValid = true
	}

	// Same-day spans only: a slot ending at or before its start would feed
	// non-positive durations into reconciliation, so it is rejected here.
	if startValid && endValid {
		startMin, _ := timeutil.MinutesOfDay(r.StartTime)
		endMin, _ := timeutil.MinutesOfDay(r.EndTime)
		if endMin <= startMin {
			errs = append(errs, validator.ValidationError{
				Field:   field("end_time"),
				Message: "end_time must be strictly after start_time",
			})
		}
	}

	return errs
}

type CreateAssignmentRequest struct {
	WorkerID  string            `json:"worker_id"`
	ClientID  string            `json:"client_id"`
	StartDate string            `json:"start_date"` // YYYY-MM-DD format
	EndDate   *string           `json:"end_date"`   // YYYY-MM-DD format, optional (open-ended)
	TimeSlots []TimeSlotRequest `json:"time_slots"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		} else if *r.EndDate < r.StartDate {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(r.TimeSlots) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "time_slots",
			Message: "at least one time slot is required",
		})
	}
	for i := range r.TimeSlots {
		errs = r.TimeSlots[i].validate(i, errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAssignmentRequest replaces the assignment window and, when TimeSlots
// is non-nil, the full slot set. Partial slot edits are not supported.
type UpdateAssignmentRequest struct {
	ID        string            `json:"-"`
	StartDate *string           `json:"start_date,omitempty"`
	EndDate   *string           `json:"end_date,omitempty"`
	ClearEnd  bool              `json:"clear_end_date,omitempty"` // make the assignment open-ended
	IsActive  *bool             `json:"is_active,omitempty"`
	TimeSlots []TimeSlotRequest `json:"time_slots,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.StartDate != nil {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if r.ClearEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date and clear_end_date are mutually exclusive",
			})
		} else if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.StartDate != nil && r.EndDate != nil && *r.EndDate < *r.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	for i := range r.TimeSlots {
		errs = r.TimeSlots[i].validate(i, errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeSlotResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	DayType   string `json:"day_type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AssignmentResponse struct {
	ID         string             `json:"id"`
	WorkerID   string             `json:"worker_id"`
	WorkerName *string            `json:"worker_name,omitempty"`
	ClientID   string             `json:"client_id"`
	ClientName *string            `json:"client_name,omitempty"`
	StartDate  string             `json:"start_date"`
	EndDate    *string            `json:"end_date,omitempty"`
	IsActive   bool               `json:"is_active"`
	TimeSlots  []TimeSlotResponse `json:"time_slots"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

type AssignmentFilter struct {
	WorkerID *string `json:"worker_id,omitempty"`
	ClientID *string `json:"client_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAssignmentsResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Assignments []AssignmentResponse `json:"assignments"`
}
