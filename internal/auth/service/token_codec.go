package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	apperrors "github.com/patientcare/auth-service/internal/errors"
)

// accessClaims is the JWT payload: registered claims plus the caller's role.
type accessClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodecOption configures a token codec.
type TokenCodecOption func(*tokenCodec)

// WithIssuer sets the "iss" claim written on Generate and required on Verify.
func WithIssuer(issuer string) TokenCodecOption {
	return func(c *tokenCodec) {
		c.issuer = issuer
	}
}

// WithClock replaces time.Now for both issuing and expiry checks.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *tokenCodec) {
		c.now = now
	}
}

// tokenCodec implements TokenCodec with HS256 JWTs.
type tokenCodec struct {
	key    SigningKey
	ttl    time.Duration
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

// NewTokenCodec creates a TokenCodec signing with key; tokens live for ttl.
func NewTokenCodec(key SigningKey, ttl time.Duration, opts ...TokenCodecOption) TokenCodec {
	c := &tokenCodec{
		key: key,
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{authDomain.SigningMethod}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(c.issuer))
	}
	c.parser = jwt.NewParser(parserOpts...)

	return c
}

// Generate mints a signed token. Subject and role may be empty.
func (c *tokenCodec) Generate(subject, role string) (*authDomain.AccessToken, error) {
	jti, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate token id")
	}

	now := c.now()
	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(c.ttl))

	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   subject,
			Issuer:    c.issuer,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key.key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.AccessToken{
		Token:     signed,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Verify parses token and returns its claims, or ErrInvalidToken.
func (c *tokenCodec) Verify(token string) (*authDomain.TokenClaims, error) {
	if token == "" || c.key.IsZero() {
		return nil, authDomain.ErrInvalidToken
	}

	claims := &accessClaims{}
	parsed, err := c.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authDomain.ErrInvalidToken
		}
		return c.key.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	result := &authDomain.TokenClaims{
		ID:      claims.ID,
		Subject: claims.Subject,
		Role:    claims.Role,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
