package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/carelink/homecare-backend-go/internal/domain/report"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// Upsert implements report.Repository. (assignment_id, period_year,
// period_month) is unique, so re-running a report replaces the previous
// summary row.
func (r *reportRepositoryImpl) Upsert(ctx context.Context, m report.MonthlyReport) (report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_reports (
			id, assignment_id, period_year, period_month,
			assigned_hours, calculated_hours, excess_deficit_hours,
			working_days, weekend_days, holiday_days, generated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (assignment_id, period_year, period_month) DO UPDATE SET
			assigned_hours = EXCLUDED.assigned_hours,
			calculated_hours = EXCLUDED.calculated_hours,
			excess_deficit_hours = EXCLUDED.excess_deficit_hours,
			working_days = EXCLUDED.working_days,
			weekend_days = EXCLUDED.weekend_days,
			holiday_days = EXCLUDED.holiday_days,
			generated_at = NOW()
		RETURNING id, generated_at
	`

	err := q.QueryRow(ctx, query,
		m.AssignmentID, m.PeriodYear, m.PeriodMonth,
		m.AssignedHours, m.CalculatedHours, m.ExcessDeficitHours,
		m.WorkingDays, m.WeekendDays, m.HolidayDays,
	).Scan(&m.ID, &m.GeneratedAt)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to upsert monthly report: %w", err)
	}

	return m, nil
}

const monthlyReportColumns = `
	id, assignment_id, period_year, period_month,
	assigned_hours, calculated_hours, excess_deficit_hours,
	working_days, weekend_days, holiday_days, generated_at
`

func scanMonthlyReport(row pgx.Row) (report.MonthlyReport, error) {
	var m report.MonthlyReport
	err := row.Scan(
		&m.ID, &m.AssignmentID, &m.PeriodYear, &m.PeriodMonth,
		&m.AssignedHours, &m.CalculatedHours, &m.ExcessDeficitHours,
		&m.WorkingDays, &m.WeekendDays, &m.HolidayDays, &m.GeneratedAt,
	)
	return m, err
}

// GetByAssignmentAndPeriod implements report.Repository.
func (r *reportRepositoryImpl) GetByAssignmentAndPeriod(ctx context.Context, assignmentID string, year, month int) (report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + monthlyReportColumns + `
		FROM monthly_reports
		WHERE assignment_id = $1 AND period_year = $2 AND period_month = $3
	`

	m, err := scanMonthlyReport(q.QueryRow(ctx, query, assignmentID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.MonthlyReport{}, report.ErrReportNotFound
		}
		return report.MonthlyReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	return m, nil
}

// ListByPeriod implements report.Repository.
func (r *reportRepositoryImpl) ListByPeriod(ctx context.Context, year, month int) ([]report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + monthlyReportColumns + `
		FROM monthly_reports
		WHERE period_year = $1 AND period_month = $2
		ORDER BY generated_at DESC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}
	defer rows.Close()

	var reports []report.MonthlyReport
	for rows.Next() {
		m, err := scanMonthlyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly report: %w", err)
		}
		reports = append(reports, m)
	}

	return reports, nil
}
