package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token issued at login.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

type TokenRepository interface {
	Store(ctx context.Context, t RefreshToken) (RefreshToken, error)
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
