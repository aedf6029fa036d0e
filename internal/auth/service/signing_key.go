package service

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	apperrors "github.com/patientcare/auth-service/internal/errors"
)

// SigningKey is the HMAC secret used by the token codec. It is immutable once built.
type SigningKey struct {
	key []byte
}

// NewSigningKey copies raw into a SigningKey, rejecting keys shorter than 256 bits.
func NewSigningKey(raw []byte) (SigningKey, error) {
	if len(raw) < authDomain.MinSigningKeySize {
		return SigningKey{}, authDomain.ErrInvalidSigningKey
	}

	key := make([]byte, len(raw))
	copy(key, raw)
	return SigningKey{key: key}, nil
}

// ParseSigningKey decodes a standard base64 signing key.
func ParseSigningKey(encoded string) (SigningKey, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return SigningKey{}, apperrors.Wrap(authDomain.ErrInvalidSigningKey, "not valid base64")
	}
	defer zero(raw)

	return NewSigningKey(raw)
}

// GenerateSigningKey returns a fresh random key of the minimum size.
func GenerateSigningKey() ([]byte, error) {
	raw := make([]byte, authDomain.MinSigningKeySize)
	if _, err := rand.Read(raw); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate signing key")
	}
	return raw, nil
}

// Len returns the key length in bytes.
func (k SigningKey) Len() int {
	return len(k.key)
}

// IsZero reports whether the key was never initialized.
func (k SigningKey) IsZero() bool {
	return len(k.key) == 0
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
