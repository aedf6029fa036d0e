package domain

import (
	"time"
)

// LoginInput carries the credentials submitted to the login endpoint.
type LoginInput struct {
	Email    string
	Password string
}

// AccessToken is a signed token handed to a client after a successful login.
type AccessToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims are the identity assertions carried by a verified token.
type TokenClaims struct {
	ID        string
	Subject   string
	Role      string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
