// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/patientcare/auth-service/internal/database"
	apperrors "github.com/patientcare/auth-service/internal/errors"
	"github.com/patientcare/auth-service/internal/user/domain"
	appValidation "github.com/patientcare/auth-service/internal/validation"
)

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordHasher PasswordHasher,
) UseCase {
	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

// validateCreateUserInput validates the new user using jellydator/validation
func (uc *UserUseCase) validateCreateUserInput(input *domain.CreateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
		validation.Field(&input.Role,
			validation.In(domain.RoleUser, domain.RoleAdmin).Error("role must be USER or ADMIN"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create validates the input, hashes the password and stores the user.
// An empty role defaults to USER.
func (uc *UserUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	normalized := &domain.CreateUserInput{
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
		Role:     strings.ToUpper(strings.TrimSpace(input.Role)),
	}
	if normalized.Role == "" {
		normalized.Role = domain.RoleUser
	}

	if err := uc.validateCreateUserInput(normalized); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash(normalized.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        normalized.Email,
		PasswordHash: hashedPassword,
		Role:         normalized.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindByEmail retrieves a user by email. Returns domain.ErrUserNotFound when absent.
func (uc *UserUseCase) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
