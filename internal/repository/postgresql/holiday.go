package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/holiday"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Upsert implements holiday.Repository. The date column carries a unique
// constraint, so re-adding a date replaces its name.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES (uuidv7(), $1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, date, name, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Name).Scan(
		&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return h, nil
}

// GetByDate implements holiday.Repository.
func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM holidays
		WHERE date = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

// ListByYear implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// CalendarForRange implements holiday.Repository.
func (r *holidayRepositoryImpl) CalendarForRange(ctx context.Context, start, end time.Time) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name
		FROM holidays
		WHERE date >= $1 AND date <= $2
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	defer rows.Close()

	calendar := make(map[string]string)
	for rows.Next() {
		var date time.Time
		var name string
		if err := rows.Scan(&date, &name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		calendar[date.Format(timeutil.DateLayout)] = name
	}

	return calendar, nil
}

// Delete implements holiday.Repository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
