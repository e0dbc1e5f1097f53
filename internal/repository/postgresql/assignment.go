package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/assignment"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements assignment.Repository. Slots are inserted in the same
// querier, so wrapping the call in WithTransaction makes the whole write
// atomic.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (id, worker_id, client_id, start_date, end_date, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.WorkerID, a.ClientID, a.StartDate, a.EndDate).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	a.IsActive = true

	for i := range a.TimeSlots {
		slot, err := r.insertSlot(ctx, q, a.ID, a.TimeSlots[i])
		if err != nil {
			return assignment.Assignment{}, err
		}
		a.TimeSlots[i] = slot
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) insertSlot(ctx context.Context, q database.Querier, assignmentID string, s assignment.TimeSlot) (assignment.TimeSlot, error) {
	query := `
		INSERT INTO time_slots (id, assignment_id, day_of_week, day_type, start_time, end_time)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignmentID, s.DayOfWeek, string(s.DayType), s.StartTime, s.EndTime,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return assignment.TimeSlot{}, fmt.Errorf("failed to create time slot: %w", err)
	}
	s.AssignmentID = assignmentID

	return s, nil
}

const assignmentColumns = `
	a.id, a.worker_id, a.client_id, a.start_date, a.end_date, a.is_active,
	a.created_at, a.updated_at,
	w.first_name || ' ' || w.last_name AS worker_name,
	c.first_name || ' ' || c.last_name AS client_name
`

const assignmentJoins = `
	FROM assignments a
	JOIN workers w ON a.worker_id = w.id
	JOIN clients c ON a.client_id = c.id
`

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(
		&a.ID, &a.WorkerID, &a.ClientID, &a.StartDate, &a.EndDate, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt, &a.WorkerName, &a.ClientName,
	)
	return a, err
}

// GetByID implements assignment.Repository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAssignment(q.QueryRow(ctx, "SELECT "+assignmentColumns+assignmentJoins+" WHERE a.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := r.loadSlots(ctx, q, &a); err != nil {
		return assignment.Assignment{}, err
	}

	return a, nil
}

func (r *assignmentRepositoryImpl) loadSlots(ctx context.Context, q database.Querier, a *assignment.Assignment) error {
	query := `
		SELECT id, assignment_id, day_of_week, day_type, start_time, end_time, created_at, updated_at
		FROM time_slots
		WHERE assignment_id = $1
		ORDER BY day_of_week, start_time
	`

	rows, err := q.Query(ctx, query, a.ID)
	if err != nil {
		return fmt.Errorf("failed to get time slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s assignment.TimeSlot
		var dayType string
		err := rows.Scan(&s.ID, &s.AssignmentID, &s.DayOfWeek, &dayType, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to scan time slot: %w", err)
		}
		s.DayType = timeutil.DayType(dayType)
		a.TimeSlots = append(a.TimeSlots, s)
	}

	return nil
}

// List implements assignment.Repository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("a.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("a.client_id = $%d", argIdx))
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("a.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM assignments a WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY a.start_date DESC LIMIT $%d OFFSET $%d`,
		assignmentColumns, assignmentJoins, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	rows.Close()

	for i := range assignments {
		if err := r.loadSlots(ctx, q, &assignments[i]); err != nil {
			return nil, 0, err
		}
	}

	return assignments, total, nil
}

// ListActiveByWorker implements assignment.Repository. An empty excludeID
// excludes nothing; the text comparison keeps '' from being cast to uuid.
func (r *assignmentRepositoryImpl) ListActiveByWorker(ctx context.Context, workerID string, excludeID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + assignmentColumns + assignmentJoins + `
		WHERE a.worker_id = $1 AND a.is_active = true AND a.id::text != $2
		ORDER BY a.start_date
	`

	rows, err := q.Query(ctx, query, workerID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	rows.Close()

	for i := range assignments {
		if err := r.loadSlots(ctx, q, &assignments[i]); err != nil {
			return nil, err
		}
	}

	return assignments, nil
}

// GetActiveForMonth implements assignment.Repository. The month-eligibility
// rule lives here, in the caller layer, not in the reconciler:
// start_date <= monthEnd AND (end_date IS NULL OR end_date >= monthStart).
func (r *assignmentRepositoryImpl) GetActiveForMonth(ctx context.Context, id string, monthStart, monthEnd time.Time) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + assignmentColumns + assignmentJoins + `
		WHERE a.id = $1 AND a.is_active = true
		  AND a.start_date <= $2
		  AND (a.end_date IS NULL OR a.end_date >= $3)
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id, monthEnd, monthStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment for month: %w", err)
	}

	if err := r.loadSlots(ctx, q, &a); err != nil {
		return assignment.Assignment{}, err
	}

	return a, nil
}

// UpdateWindow implements assignment.Repository.
func (r *assignmentRepositoryImpl) UpdateWindow(ctx context.Context, id string, startDate time.Time, endDate *time.Time, isActive *bool) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"start_date = $1", "end_date = $2", "updated_at = NOW()"}
	args := []interface{}{startDate, endDate}
	argIdx := 3

	if isActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *isActive)
		argIdx++
	}

	args = append(args, id)

	query := fmt.Sprintf(`UPDATE assignments SET %s WHERE id = $%d RETURNING id`,
		strings.Join(updates, ", "), argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// ReplaceTimeSlots implements assignment.Repository. Slots are always
// replaced wholesale; there are no partial slot updates.
func (r *assignmentRepositoryImpl) ReplaceTimeSlots(ctx context.Context, assignmentID string, slots []assignment.TimeSlot) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_slots WHERE assignment_id = $1`, assignmentID); err != nil {
		return fmt.Errorf("failed to clear time slots: %w", err)
	}

	for _, s := range slots {
		if _, err := r.insertSlot(ctx, q, assignmentID, s); err != nil {
			return err
		}
	}

	return nil
}

// Deactivate implements assignment.Repository.
func (r *assignmentRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE assignments SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate assignment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
