package http

import (
	"net/http"

	"github.com/carelink/homecare-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// claimString pulls a single string claim from the verified token.
func claimString(r *http.Request, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", auth.ErrInvalidToken
	}

	return value, nil
}

// workerIDFromClaims resolves the caller's worker profile. Admin tokens have
// no worker_id claim and fail here.
func workerIDFromClaims(r *http.Request) (string, error) {
	return claimString(r, "worker_id")
}
