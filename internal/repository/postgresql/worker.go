package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.Repository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, first_name, last_name, worker_code, email, phone, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.FirstName, w.LastName, w.WorkerCode, w.Email, w.Phone,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "workers_worker_code_key" {
				return worker.Worker{}, worker.ErrWorkerCodeExists
			}
			return worker.Worker{}, worker.ErrWorkerEmailExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	w.IsActive = true

	return w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByWorkerCode implements worker.Repository.
func (r *workerRepositoryImpl) GetByWorkerCode(ctx context.Context, code string) (worker.Worker, error) {
	return r.getOne(ctx, "worker_code = $1", code)
}

func (r *workerRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, worker_code, email, phone, is_active, created_at, updated_at
		FROM workers
		WHERE deleted_at IS NULL AND ` + where

	var w worker.Worker
	err := q.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.WorkerCode, &w.Email, &w.Phone,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// List implements worker.Repository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM workers WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	// SortBy is validated against a whitelist in the filter DTO.
	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, worker_code, email, phone, is_active, created_at, updated_at
		FROM workers
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, filter.SortBy, strings.ToUpper(filter.SortOrder), argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID, &w.FirstName, &w.LastName, &w.WorkerCode, &w.Email, &w.Phone,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, total, nil
}

// Update implements worker.Repository.
func (r *workerRepositoryImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.FirstName != nil {
		updates = append(updates, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		updates = append(updates, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE workers SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id, first_name, last_name, worker_code, email, phone, is_active, created_at, updated_at
	`, strings.Join(updates, ", "), argIdx)

	var w worker.Worker
	err := q.QueryRow(ctx, query, args...).Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.WorkerCode, &w.Email, &w.Phone,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrWorkerEmailExists
		}
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return w, nil
}

// SoftDelete implements worker.Repository.
func (r *workerRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE workers SET deleted_at = NOW(), is_active = false, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
