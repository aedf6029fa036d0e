// Package domain defines the authentication domain models: login credentials,
// issued access tokens and the claims recovered from a verified token.
package domain

// SigningMethod is the JWT "alg" every token is signed and verified with.
const SigningMethod = "HS256"

// MinSigningKeySize is the minimum decoded signing key length in bytes (256 bits).
const MinSigningKeySize = 32
