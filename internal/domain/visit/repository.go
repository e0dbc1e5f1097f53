package visit

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v Visit) (Visit, error)
	GetByID(ctx context.Context, id string) (Visit, error)

	// GetOpenVisit returns the un-checked-out visit for the worker,
	// assignment and date, if any.
	GetOpenVisit(ctx context.Context, workerID, assignmentID string, date time.Time) (Visit, error)

	List(ctx context.Context, filter VisitFilter) ([]Visit, int64, error)
	SetCheckOut(ctx context.Context, id string, at time.Time, lat, lng *float64, note *string, workedMinutes int) (Visit, error)
	UpdateNote(ctx context.Context, id string, note string) (Visit, error)
}
