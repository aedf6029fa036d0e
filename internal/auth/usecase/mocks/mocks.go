// Package mocks provides testify mocks for the authentication use case and its collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	userDomain "github.com/patientcare/auth-service/internal/user/domain"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of AuthUseCase.
func (m *MockAuthUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.AccessToken, bool, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*authDomain.AccessToken), args.Bool(1), args.Error(2)
}

// IsValid mocks the IsValid method of AuthUseCase.
func (m *MockAuthUseCase) IsValid(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

// MockUserLookup is a mock implementation of usecase.UserLookup.
type MockUserLookup struct {
	mock.Mock
}

// FindByEmail mocks the FindByEmail method of UserLookup.
func (m *MockUserLookup) FindByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockPasswordVerifier is a mock implementation of usecase.PasswordVerifier.
type MockPasswordVerifier struct {
	mock.Mock
}

// Matches mocks the Matches method of PasswordVerifier.
func (m *MockPasswordVerifier) Matches(plaintext, hash string) bool {
	args := m.Called(plaintext, hash)
	return args.Bool(0)
}

// MockTokenIssuer is a mock implementation of usecase.TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

// Generate mocks the Generate method of TokenIssuer.
func (m *MockTokenIssuer) Generate(subject, role string) (*authDomain.AccessToken, error) {
	args := m.Called(subject, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AccessToken), args.Error(1)
}

// Verify mocks the Verify method of TokenIssuer.
func (m *MockTokenIssuer) Verify(token string) (*authDomain.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenClaims), args.Error(1)
}
