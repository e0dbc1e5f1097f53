package holiday

import "time"

// Holiday marks a single calendar date as a holiday for day classification.
// Dates are unique; re-adding a date replaces its name.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
