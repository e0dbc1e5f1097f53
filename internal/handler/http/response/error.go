package response

import (
	"errors"
	"net/http"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/domain/auth"
	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/carelink/homecare-backend-go/internal/domain/holiday"
	"github.com/carelink/homecare-backend-go/internal/domain/report"
	"github.com/carelink/homecare-backend-go/internal/domain/user"
	"github.com/carelink/homecare-backend-go/internal/domain/visit"
	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/carelink/homecare-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Schedule conflicts carry their full description list
	var conflictErr *assignment.ConflictError
	if errors.As(err, &conflictErr) {
		ScheduleConflict(w, conflictErr.Conflicts)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerCodeExists):
		Conflict(w, "Worker code already exists")
	case errors.Is(err, worker.ErrWorkerEmailExists):
		Conflict(w, "Worker email already registered")
	case errors.Is(err, worker.ErrWorkerInactive):
		BadRequest(w, "Worker is deactivated", nil)

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientInactive):
		BadRequest(w, "Client is deactivated", nil)

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentInactive):
		BadRequest(w, "Assignment is deactivated", nil)
	case errors.Is(err, assignment.ErrInvalidWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timeutil.ErrInvalidTimeFormat):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Visit domain errors
	case errors.Is(err, visit.ErrVisitNotFound):
		NotFound(w, "Visit not found")
	case errors.Is(err, visit.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this assignment today")
	case errors.Is(err, visit.ErrNotCheckedIn):
		Conflict(w, "Not checked in yet")
	case errors.Is(err, visit.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, visit.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this visit")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrAssignmentNotInMonth):
		BadRequest(w, "Assignment is not active during the requested month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
