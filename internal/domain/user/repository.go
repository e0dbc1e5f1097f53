package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByWorkerID(ctx context.Context, workerID string) (User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
}
