package worker

import "context"

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByWorkerCode(ctx context.Context, code string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (Worker, error)
	SoftDelete(ctx context.Context, id string) error
}
