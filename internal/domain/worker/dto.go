package worker

import (
	"strings"

	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	WorkerCode string  `json:"worker_code"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Password   string  `json:"password"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.WorkerCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_code",
			Message: "worker_code is required",
		})
	} else if !validator.IsValidWorkerCode(r.WorkerCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_code",
			Message: "worker_code must be in NNNN-NNNN format",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	WorkerCode string  `json:"worker_code"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type WorkerFilter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // last_name, worker_code, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.SortBy != "" {
		validSortFields := []string{"last_name", "worker_code", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: " + strings.Join(validSortFields, ", "),
			})
		}
	} else {
		f.SortBy = "last_name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListWorkersResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Workers    []WorkerResponse `json:"workers"`
}
