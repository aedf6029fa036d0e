package usecase

import (
	"context"
	"errors"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	userDomain "github.com/patientcare/auth-service/internal/user/domain"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	users    UserLookup
	verifier PasswordVerifier
	tokens   TokenIssuer
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(users UserLookup, verifier PasswordVerifier, tokens TokenIssuer) AuthUseCase {
	return &authUseCase{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Authenticate looks up the user, verifies the password and issues a token
// asserting the user's email and role.
func (a *authUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.AccessToken, bool, error) {
	user, err := a.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !a.verifier.Matches(input.Password, user.PasswordHash) {
		return nil, false, nil
	}

	token, err := a.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return nil, false, err
	}

	return token, true, nil
}

// IsValid delegates to the token verifier; every failure maps to false.
func (a *authUseCase) IsValid(ctx context.Context, token string) bool {
	_, err := a.tokens.Verify(token)
	return err == nil
}
