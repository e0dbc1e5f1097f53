package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/carelink/homecare-backend-go/internal/domain/user"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, worker_id, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash, string(u.Role), u.WorkerID).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	u.IsActive = true

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

// GetByWorkerID implements user.Repository.
func (r *userRepositoryImpl) GetByWorkerID(ctx context.Context, workerID string) (user.User, error) {
	return r.getOne(ctx, "worker_id = $1", workerID)
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, worker_id, is_active, created_at, updated_at
		FROM users
		WHERE ` + where

	var u user.User
	var role string
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &role, &u.WorkerID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	u.Role = user.Role(role)

	return u, nil
}

// UpdatePassword implements user.Repository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SetActive implements user.Repository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`,
		active, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update user active flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
