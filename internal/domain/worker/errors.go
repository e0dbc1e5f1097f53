package worker

import "errors"

var (
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrWorkerCodeExists  = errors.New("worker code already exists")
	ErrWorkerEmailExists = errors.New("worker email already registered")
	ErrWorkerInactive    = errors.New("worker is deactivated")
)
