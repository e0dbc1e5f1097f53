package holiday

import (
	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type UpsertHolidayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD format
	Name string `json:"name"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListHolidaysRequest struct {
	Year int `json:"year"`
}

func (r *ListHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
