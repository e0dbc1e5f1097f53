package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/carelink/homecare-backend-go/internal/domain/auth"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.TokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, t auth.RefreshToken) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, t.UserID, t.Token, t.ExpiresAt).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return auth.RefreshToken{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return t, nil
}

// GetByToken implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var t auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return t, nil
}

// Revoke implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`,
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}

	return nil
}

// RevokeAllForUser implements auth.TokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}
