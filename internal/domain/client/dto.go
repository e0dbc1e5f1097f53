package client

import (
	"strings"

	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Address         string  `json:"address"`
	Phone           *string `json:"phone,omitempty"`
	ContractedHours float64 `json:"contracted_hours"`
}

func (r *CreateClientRequest) Validate() error {
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
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}
	if r.ContractedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "contracted_hours",
			Message: "contracted_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	ID              string   `json:"-"`
	FirstName       *string  `json:"first_name,omitempty"`
	LastName        *string  `json:"last_name,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	ContractedHours *float64 `json:"contracted_hours,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
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
	if r.ContractedHours != nil && *r.ContractedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "contracted_hours",
			Message: "contracted_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClientResponse struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Address         string  `json:"address"`
	Phone           *string `json:"phone,omitempty"`
	ContractedHours string  `json:"contracted_hours"` // decimal, 2dp
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ClientFilter struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // last_name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *ClientFilter) Validate() error {
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

	if f.SortBy != "" {
		validSortFields := []string{"last_name", "created_at"}
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

type ListClientsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Clients    []ClientResponse `json:"clients"`
}
