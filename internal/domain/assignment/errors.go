package assignment

import (
	"errors"
	"strings"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentInactive = errors.New("assignment is deactivated")
	ErrNoTimeSlots        = errors.New("assignment has no time slots")
	ErrInvalidWindow      = errors.New("end date must not be before start date")
)

// ConflictError is returned when a proposed assignment would double-book the
// worker. Conflicts holds one description per overlapping slot pair, in
// detection order.
type ConflictError struct {
	Conflicts []string
}

func (e *ConflictError) Error() string {
	return "schedule conflict: " + strings.Join(e.Conflicts, "; ")
}
