package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/patientcare/auth-service/internal/errors"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// passwordHasher implements PasswordHasher using Argon2id, accepting legacy bcrypt hashes on Matches.
type passwordHasher struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain text password using Argon2id.
func (p *passwordHasher) Hash(plaintext string) (string, error) {
	hash, err := p.hasher.Hash([]byte(plaintext))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Matches performs a constant-time comparison between a plain password and its hash.
func (p *passwordHasher) Matches(plaintext, hash string) bool {
	if hash == "" {
		return false
	}

	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}

	ok, err := p.hasher.Verify([]byte(plaintext), hash)
	if err != nil {
		return false
	}
	return ok
}

func isBcryptHash(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}

// NewPasswordHasher creates a PasswordHasher using the Moderate Argon2id policy.
func NewPasswordHasher() PasswordHasher {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// Only reachable with an invalid policy
		panic(err)
	}

	return &passwordHasher{
		hasher: hasher,
	}
}
