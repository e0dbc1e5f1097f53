package visit

import (
	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	AssignmentID string   `json:"assignment_id"`
	WorkerID     string   `json:"-"` // from token claims
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	VisitID   string   `json:"-"`
	WorkerID  string   `json:"-"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VisitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "visit_id",
			Message: "visit_id is required",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateNoteRequest struct {
	VisitID  string `json:"-"`
	WorkerID string `json:"-"`
	Note     string `json:"note"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VisitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "visit_id",
			Message: "visit_id is required",
		})
	}
	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VisitResponse struct {
	ID            string   `json:"id"`
	AssignmentID  string   `json:"assignment_id"`
	WorkerID      string   `json:"worker_id"`
	WorkerName    *string  `json:"worker_name,omitempty"`
	ClientName    *string  `json:"client_name,omitempty"`
	Date          string   `json:"date"`
	CheckInAt     *string  `json:"check_in_at,omitempty"`
	CheckOutAt    *string  `json:"check_out_at,omitempty"`
	Note          *string  `json:"note,omitempty"`
	WorkedMinutes *int     `json:"worked_minutes,omitempty"`
	CheckInLat    *float64 `json:"check_in_latitude,omitempty"`
	CheckInLng    *float64 `json:"check_in_longitude,omitempty"`
}

type VisitFilter struct {
	WorkerID     *string `json:"worker_id,omitempty"`
	AssignmentID *string `json:"assignment_id,omitempty"`
	DateFrom     *string `json:"date_from,omitempty"` // YYYY-MM-DD
	DateTo       *string `json:"date_to,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *VisitFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != nil {
		if _, valid := validator.IsValidDate(*f.DateFrom); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.DateTo != nil {
		if _, valid := validator.IsValidDate(*f.DateTo); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.DateFrom != nil && f.DateTo != nil && *f.DateTo < *f.DateFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}

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

type ListVisitsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Visits     []VisitResponse `json:"visits"`
}
