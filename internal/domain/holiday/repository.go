package holiday

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert inserts the holiday or, when the date already exists, replaces
	// its name.
	Upsert(ctx context.Context, h Holiday) (Holiday, error)
	GetByDate(ctx context.Context, date time.Time) (Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// CalendarForRange returns holidays in [start, end] keyed by YYYY-MM-DD,
	// the shape the day classifier consumes.
	CalendarForRange(ctx context.Context, start, end time.Time) (map[string]string, error)

	Delete(ctx context.Context, id string) error
}
