package report

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")

	// ErrAssignmentNotInMonth is returned when the requested assignment is
	// missing, inactive, or its validity window does not touch the report
	// month.
	ErrAssignmentNotInMonth = errors.New("assignment is not active during the requested month")
)
