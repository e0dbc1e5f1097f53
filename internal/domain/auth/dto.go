package auth

import (
	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

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
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkerCodeLoginRequest is the login used by the field worker apps.
type WorkerCodeLoginRequest struct {
	WorkerCode string `json:"worker_code"`
	Password   string `json:"password"`
}

func (r *WorkerCodeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

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
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken           string  `json:"access_token"`
	AccessTokenExpiresAt  int64   `json:"access_token_expires_at"`
	RefreshToken          string  `json:"refresh_token"`
	RefreshTokenExpiresAt int64   `json:"refresh_token_expires_at"`
	UserID                string  `json:"user_id"`
	Role                  string  `json:"role"`
	WorkerID              *string `json:"worker_id,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
