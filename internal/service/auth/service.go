package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/auth"
	"github.com/carelink/homecare-backend-go/internal/domain/user"
	"github.com/carelink/homecare-backend-go/internal/domain/worker"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/pkg/jwt"
	"github.com/carelink/homecare-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LoginWithWorkerCode(ctx context.Context, req auth.WorkerCodeLoginRequest) (auth.LoginResponse, error)
	Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string, accessToken string) error
}

type serviceImpl struct {
	db         *database.DB
	userRepo   user.Repository
	workerRepo worker.Repository
	tokenRepo  auth.TokenRepository
	jwtService jwt.Service
}

func NewService(db *database.DB, userRepo user.Repository, workerRepo worker.Repository, tokenRepo auth.TokenRepository, jwtService jwt.Service) Service {
	return &serviceImpl{
		db:         db,
		userRepo:   userRepo,
		workerRepo: workerRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login implements Service.
func (s *serviceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return s.issueTokens(ctx, userData, req.Password)
}

// LoginWithWorkerCode implements Service. Field workers sign in with their
// worker code instead of an email address.
func (s *serviceImpl) LoginWithWorkerCode(ctx context.Context, req auth.WorkerCodeLoginRequest) (auth.LoginResponse, error) {
	workerData, err := s.workerRepo.GetByWorkerCode(ctx, req.WorkerCode)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get worker by code: %w", err)
	}

	userData, err := s.userRepo.GetByWorkerID(ctx, workerData.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by worker id: %w", err)
	}

	return s.issueTokens(ctx, userData, req.Password)
}

func (s *serviceImpl) issueTokens(ctx context.Context, userData user.User, password string) (auth.LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	var resp auth.LoginResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		resp.AccessToken, resp.AccessTokenExpiresAt, err = s.jwtService.GenerateAccessToken(
			userData.ID, userData.Email, userData.WorkerID, userData.Role,
		)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		resp.RefreshToken, resp.RefreshTokenExpiresAt, err = s.jwtService.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		_, err = s.tokenRepo.Store(txCtx, auth.RefreshToken{
			UserID:    userData.ID,
			Token:     resp.RefreshToken,
			ExpiresAt: time.Unix(resp.RefreshTokenExpiresAt, 0),
		})
		if err != nil {
			return fmt.Errorf("failed to store refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp.UserID = userData.ID
	resp.Role = string(userData.Role)
	resp.WorkerID = userData.WorkerID

	return resp, nil
}

// Refresh implements Service.
func (s *serviceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	if stored.RevokedAt != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.RefreshResponse{}, auth.ErrTokenExpired
	}

	userData, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.RefreshResponse{}, user.ErrUserInactive
	}

	var resp auth.RefreshResponse
	resp.AccessToken, resp.AccessTokenExpiresAt, err = s.jwtService.GenerateAccessToken(
		userData.ID, userData.Email, userData.WorkerID, userData.Role,
	)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return resp, nil
}

// Logout implements Service. The refresh token is revoked in the database;
// the access token goes on the in-memory denylist until it expires on its
// own.
func (s *serviceImpl) Logout(ctx context.Context, refreshToken string, accessToken string) error {
	if refreshToken != "" {
		if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, auth.ErrInvalidToken) {
			return err
		}
	}
	if accessToken != "" {
		s.jwtService.RevokeToken(accessToken)
	}

	return nil
}
