package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/carelink/homecare-backend-go/internal/domain/user"
	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.Worker, error)
	GetByID(ctx context.Context, id string) (worker.Worker, error)
	List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error)
	Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	db         *database.DB
	workerRepo worker.Repository
	userRepo   user.Repository
}

func NewService(db *database.DB, workerRepo worker.Repository, userRepo user.Repository) Service {
	return &serviceImpl{
		db:         db,
		workerRepo: workerRepo,
		userRepo:   userRepo,
	}
}

// Create implements Service. The worker profile and its login account are
// created in one transaction so a worker can never exist without
// credentials.
func (s *serviceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.Worker, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created worker.Worker
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.workerRepo.Create(txCtx, worker.Worker{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			WorkerCode: req.WorkerCode,
			Email:      req.Email,
			Phone:      req.Phone,
		})
		if err != nil {
			return err
		}

		_, err = s.userRepo.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleWorker,
			WorkerID:     &created.ID,
		})
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return worker.Worker{}, err
	}

	return created, nil
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

// List implements Service.
func (s *serviceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	return s.workerRepo.List(ctx, filter)
}

// Update implements Service. Deactivating the profile also deactivates the
// login account; reactivating restores it.
func (s *serviceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	var updated worker.Worker
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = s.workerRepo.Update(txCtx, req)
		if err != nil {
			return err
		}

		if req.IsActive != nil {
			if err := s.setAccountActive(txCtx, updated.ID, *req.IsActive); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return worker.Worker{}, err
	}

	return updated, nil
}

// Delete implements Service. Soft delete: the profile row survives for
// assignment and visit history, the login account is switched off.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.workerRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}

		return s.setAccountActive(txCtx, id, false)
	})
}

func (s *serviceImpl) setAccountActive(ctx context.Context, workerID string, active bool) error {
	account, err := s.userRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		// Legacy workers may predate login accounts.
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get worker account: %w", err)
	}

	return s.userRepo.SetActive(ctx, account.ID, active)
}
