package visit

import "time"

// Visit is one worker's check-in/check-out against an assignment on a
// calendar date. WorkedMinutes is derived at check-out, never supplied.
type Visit struct {
	ID                string
	AssignmentID      string
	WorkerID          string
	Date              time.Time
	CheckInAt         *time.Time
	CheckOutAt        *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	Note              *string
	WorkedMinutes     *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	WorkerName *string
	ClientName *string
}
