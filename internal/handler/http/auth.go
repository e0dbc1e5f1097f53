package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/carelink/homecare-backend-go/internal/domain/auth"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	"github.com/carelink/homecare-backend-go/internal/pkg/jwt"
	authService "github.com/carelink/homecare-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithWorkerCode(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService authService.Service
}

func NewAuthHandler(jwtService jwt.Service, service authService.Service) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: service,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(loginResponse.RefreshToken, loginResponse.RefreshTokenExpiresAt))
	slog.Info("User logged in", "user_id", loginResponse.UserID)
	response.Created(w, "Logged in successfully", loginResponse)
}

// LoginWithWorkerCode implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithWorkerCode(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.WorkerCodeLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Worker code login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Worker code login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResponse, err := a.authService.LoginWithWorkerCode(r.Context(), loginReq)
	if err != nil {
		slog.Error("Worker code login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(loginResponse.RefreshToken, loginResponse.RefreshTokenExpiresAt))
	slog.Info("Worker logged in", "user_id", loginResponse.UserID)
	response.Created(w, "Logged in successfully", loginResponse)
}

// RefreshToken implements AuthHandler. The refresh token comes from the
// cookie set at login, with the request body as fallback for non-browser
// clients.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("Refresh decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := refreshReq.Validate(); err != nil {
		slog.Error("Refresh validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshResponse, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, refreshResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	accessToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := a.authService.Logout(r.Context(), refreshToken, accessToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie client-side as well
	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
