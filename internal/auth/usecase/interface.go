// Package usecase defines the authentication business logic: credential checks and token validation.
package usecase

import (
	"context"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	userDomain "github.com/patientcare/auth-service/internal/user/domain"
)

// UserLookup finds users by email. Returns userDomain.ErrUserNotFound when absent.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Matches(plaintext, hash string) bool
}

// TokenIssuer mints and verifies access tokens.
type TokenIssuer interface {
	Generate(subject, role string) (*authDomain.AccessToken, error)
	Verify(token string) (*authDomain.TokenClaims, error)
}

// AuthUseCase defines the authentication operations exposed to the HTTP layer.
type AuthUseCase interface {
	// Authenticate checks the credentials and, on success, issues a token.
	//
	// Unknown email and wrong password both return (nil, false, nil) so callers
	// cannot distinguish them. A non-nil error means a collaborator failed.
	Authenticate(ctx context.Context, input *authDomain.LoginInput) (*authDomain.AccessToken, bool, error)

	// IsValid reports whether token has a valid signature and has not expired.
	IsValid(ctx context.Context, token string) bool
}
