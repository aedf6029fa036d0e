package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/patientcare/auth-service/internal/errors"
	"github.com/patientcare/auth-service/internal/user/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NormalizesAndHashes", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockUserRepository{}
		hasher := &MockPasswordHasher{}

		hasher.On("Hash", "Str0ngPassword").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "john@example.com" && u.PasswordHash == "hashed" && u.Role == domain.RoleAdmin
		})).Return(nil).Once()

		uc := NewUserUseCase(txManager, repo, hasher)
		user, err := uc.Create(ctx, &domain.CreateUserInput{
			Email:    "  John@Example.com ",
			Password: "Str0ngPassword",
			Role:     "admin",
		})

		require.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		txManager.AssertExpectations(t)
		repo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("Success_DefaultRole", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockUserRepository{}
		hasher := &MockPasswordHasher{}

		hasher.On("Hash", "Str0ngPassword").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		uc := NewUserUseCase(txManager, repo, hasher)
		user, err := uc.Create(ctx, &domain.CreateUserInput{
			Email:    "john@example.com",
			Password: "Str0ngPassword",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("Success_LowercaseAlphanumericPassword", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockUserRepository{}
		hasher := &MockPasswordHasher{}

		hasher.On("Hash", "password123").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		uc := NewUserUseCase(txManager, repo, hasher)
		user, err := uc.Create(ctx, &domain.CreateUserInput{
			Email:    "test@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		hasher.AssertExpectations(t)
	})

	t.Run("Error_ValidationFailure", func(t *testing.T) {
		tests := []struct {
			name  string
			input *domain.CreateUserInput
		}{
			{name: "InvalidEmail", input: &domain.CreateUserInput{Email: "nope", Password: "Str0ngPassword"}},
			{name: "ShortPassword", input: &domain.CreateUserInput{Email: "a@example.com", Password: "Sh0rt"}},
			{name: "LongPassword", input: &domain.CreateUserInput{Email: "a@example.com", Password: strings.Repeat("a", 129)}},
			{
				name:  "UnknownRole",
				input: &domain.CreateUserInput{Email: "a@example.com", Password: "Str0ngPassword", Role: "root"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				txManager := &MockTxManager{}
				repo := &MockUserRepository{}
				hasher := &MockPasswordHasher{}

				uc := NewUserUseCase(txManager, repo, hasher)
				user, err := uc.Create(ctx, tt.input)

				assert.Nil(t, user)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				hasher.AssertNotCalled(t, "Hash", mock.Anything)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Error_HashFailure", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockUserRepository{}
		hasher := &MockPasswordHasher{}

		hasher.On("Hash", "Str0ngPassword").Return("", errors.New("out of memory")).Once()

		uc := NewUserUseCase(txManager, repo, hasher)
		user, err := uc.Create(ctx, &domain.CreateUserInput{Email: "a@example.com", Password: "Str0ngPassword"})

		assert.Nil(t, user)
		assert.Error(t, err)
		txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockUserRepository{}
		hasher := &MockPasswordHasher{}

		hasher.On("Hash", "Str0ngPassword").Return("hashed", nil).Once()
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()

		uc := NewUserUseCase(txManager, repo, hasher)
		user, err := uc.Create(ctx, &domain.CreateUserInput{Email: "a@example.com", Password: "Str0ngPassword"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NormalizesEmail", func(t *testing.T) {
		repo := &MockUserRepository{}
		expected := &domain.User{Email: "john@example.com", Role: domain.RoleUser}
		repo.On("GetByEmail", ctx, "john@example.com").Return(expected, nil).Once()

		uc := NewUserUseCase(&MockTxManager{}, repo, &MockPasswordHasher{})
		user, err := uc.FindByEmail(ctx, " JOHN@example.com")

		require.NoError(t, err)
		assert.Equal(t, expected, user)
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound).Once()

		uc := NewUserUseCase(&MockTxManager{}, repo, &MockPasswordHasher{})
		user, err := uc.FindByEmail(ctx, "ghost@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
