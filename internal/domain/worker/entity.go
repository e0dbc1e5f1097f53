package worker

import "time"

type Worker struct {
	ID         string
	FirstName  string
	LastName   string
	WorkerCode string // NNNN-NNNN login code for the mobile apps
	Email      string
	Phone      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
