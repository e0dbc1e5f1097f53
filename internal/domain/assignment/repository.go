package assignment

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts the assignment together with its time slots.
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, int64, error)

	// ListActiveByWorker returns the worker's active assignments with their
	// slots loaded. excludeID skips one assignment (the one being updated).
	ListActiveByWorker(ctx context.Context, workerID string, excludeID string) ([]Assignment, error)

	// GetActiveForMonth fetches the assignment only when it is active and
	// its validity window intersects [monthStart, monthEnd].
	GetActiveForMonth(ctx context.Context, id string, monthStart, monthEnd time.Time) (Assignment, error)

	UpdateWindow(ctx context.Context, id string, startDate time.Time, endDate *time.Time, isActive *bool) (Assignment, error)
	ReplaceTimeSlots(ctx context.Context, assignmentID string, slots []TimeSlot) error
	Deactivate(ctx context.Context, id string) error
}
