package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/visit"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type visitRepositoryImpl struct {
	db *database.DB
}

func NewVisitRepository(db *database.DB) visit.Repository {
	return &visitRepositoryImpl{db: db}
}

const visitColumns = `
	v.id, v.assignment_id, v.worker_id, v.date,
	v.check_in_at, v.check_out_at,
	v.check_in_latitude, v.check_in_longitude,
	v.check_out_latitude, v.check_out_longitude,
	v.note, v.worked_minutes, v.created_at, v.updated_at,
	w.first_name || ' ' || w.last_name AS worker_name,
	c.first_name || ' ' || c.last_name AS client_name
`

const visitJoins = `
	FROM visits v
	JOIN workers w ON v.worker_id = w.id
	JOIN assignments a ON v.assignment_id = a.id
	JOIN clients c ON a.client_id = c.id
`

func scanVisit(row pgx.Row) (visit.Visit, error) {
	var v visit.Visit
	err := row.Scan(
		&v.ID, &v.AssignmentID, &v.WorkerID, &v.Date,
		&v.CheckInAt, &v.CheckOutAt,
		&v.CheckInLatitude, &v.CheckInLongitude,
		&v.CheckOutLatitude, &v.CheckOutLongitude,
		&v.Note, &v.WorkedMinutes, &v.CreatedAt, &v.UpdatedAt,
		&v.WorkerName, &v.ClientName,
	)
	return v, err
}

// Create implements visit.Repository.
func (r *visitRepositoryImpl) Create(ctx context.Context, v visit.Visit) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO visits (id, assignment_id, worker_id, date, check_in_at, check_in_latitude, check_in_longitude)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		v.AssignmentID, v.WorkerID, v.Date, v.CheckInAt, v.CheckInLatitude, v.CheckInLongitude,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return visit.Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}

	return v, nil
}

// GetByID implements visit.Repository.
func (r *visitRepositoryImpl) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	v, err := scanVisit(q.QueryRow(ctx, "SELECT "+visitColumns+visitJoins+" WHERE v.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visit.Visit{}, visit.ErrVisitNotFound
		}
		return visit.Visit{}, fmt.Errorf("failed to get visit: %w", err)
	}

	return v, nil
}

// GetOpenVisit implements visit.Repository.
func (r *visitRepositoryImpl) GetOpenVisit(ctx context.Context, workerID, assignmentID string, date time.Time) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + visitColumns + visitJoins + `
		WHERE v.worker_id = $1 AND v.assignment_id = $2 AND v.date = $3 AND v.check_out_at IS NULL
	`

	v, err := scanVisit(q.QueryRow(ctx, query, workerID, assignmentID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visit.Visit{}, visit.ErrVisitNotFound
		}
		return visit.Visit{}, fmt.Errorf("failed to get open visit: %w", err)
	}

	return v, nil
}

// List implements visit.Repository.
func (r *visitRepositoryImpl) List(ctx context.Context, filter visit.VisitFilter) ([]visit.Visit, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("v.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.AssignmentID != nil {
		conditions = append(conditions, fmt.Sprintf("v.assignment_id = $%d", argIdx))
		args = append(args, *filter.AssignmentID)
		argIdx++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("v.date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("v.date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM visits v WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count visits: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY v.date DESC, v.check_in_at DESC LIMIT $%d OFFSET $%d`,
		visitColumns, visitJoins, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	return visits, total, nil
}

// SetCheckOut implements visit.Repository.
func (r *visitRepositoryImpl) SetCheckOut(ctx context.Context, id string, at time.Time, lat, lng *float64, note *string, workedMinutes int) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visits
		SET check_out_at = $1,
		    check_out_latitude = $2,
		    check_out_longitude = $3,
		    note = COALESCE($4, note),
		    worked_minutes = $5,
		    updated_at = NOW()
		WHERE id = $6 AND check_out_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, at, lat, lng, note, workedMinutes, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visit.Visit{}, visit.ErrAlreadyCheckedOut
		}
		return visit.Visit{}, fmt.Errorf("failed to check out visit: %w", err)
	}

	return r.GetByID(ctx, id)
}

// UpdateNote implements visit.Repository.
func (r *visitRepositoryImpl) UpdateNote(ctx context.Context, id string, note string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE visits SET note = $1, updated_at = NOW() WHERE id = $2`,
		note, id,
	)
	if err != nil {
		return visit.Visit{}, fmt.Errorf("failed to update visit note: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return visit.Visit{}, visit.ErrVisitNotFound
	}

	return r.GetByID(ctx, id)
}
