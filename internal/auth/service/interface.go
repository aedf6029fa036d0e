// Package service provides the technical services behind authentication: the
// signing key, the token codec, password hashing and KMS unwrapping of the key.
package service

import (
	"context"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
)

// TokenCodec issues and verifies signed access tokens.
type TokenCodec interface {
	// Generate mints a token asserting subject and role, valid for the configured TTL.
	Generate(subject, role string) (*authDomain.AccessToken, error)

	// Verify checks signature, algorithm, issuer and expiry.
	// Any failure yields authDomain.ErrInvalidToken.
	Verify(token string) (*authDomain.TokenClaims, error)
}

// PasswordHasher hashes new passwords and checks plaintext passwords against stored hashes.
type PasswordHasher interface {
	// Hash returns an Argon2id PHC string for plaintext.
	Hash(plaintext string) (string, error)

	// Matches reports whether plaintext corresponds to hash.
	// Malformed or unsupported hashes never match.
	Matches(plaintext, hash string) bool
}

// KMSKeeper is the subset of *secrets.Keeper used to wrap and unwrap the signing key.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for a gocloud.dev secrets URI.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
