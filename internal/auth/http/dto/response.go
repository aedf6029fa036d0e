package dto

import (
	"time"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
)

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapAccessTokenToResponse converts an issued token into the login response.
func MapAccessTokenToResponse(token *authDomain.AccessToken) LoginResponse {
	return LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.UTC(),
	}
}
