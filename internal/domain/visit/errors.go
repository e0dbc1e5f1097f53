package visit

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in for this assignment today")
	ErrNotCheckedIn      = errors.New("not checked in yet")
	ErrAlreadyCheckedOut = errors.New("already checked out")
	ErrVisitNotFound     = errors.New("visit not found")
	ErrUnauthorized      = errors.New("unauthorized to access this visit")
)
