package domain

import (
	"github.com/patientcare/auth-service/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidToken indicates a token failed verification. The cause is never exposed.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrInvalidSigningKey indicates the configured signing key is not usable.
	ErrInvalidSigningKey = errors.Wrap(errors.ErrInvalidInput, "invalid signing key")
)
