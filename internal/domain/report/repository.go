package report

import "context"

type Repository interface {
	// Upsert stores the summary row, replacing a previous run for the same
	// assignment and period.
	Upsert(ctx context.Context, r MonthlyReport) (MonthlyReport, error)
	GetByAssignmentAndPeriod(ctx context.Context, assignmentID string, year, month int) (MonthlyReport, error)
	ListByPeriod(ctx context.Context, year, month int) ([]MonthlyReport, error)
}
