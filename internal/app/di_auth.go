package app

import (
	"context"
	"fmt"

	authHTTP "github.com/patientcare/auth-service/internal/auth/http"
	authService "github.com/patientcare/auth-service/internal/auth/service"
	authUseCase "github.com/patientcare/auth-service/internal/auth/usecase"
)

// KMSService returns the KMS service used to unwrap the signing key.
func (c *Container) KMSService() authService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = authService.NewKMSService()
	})
	return c.kmsService
}

// PasswordHasher returns the password hasher shared by login and user creation.
func (c *Container) PasswordHasher() authService.PasswordHasher {
	c.passwordHasherInit.Do(func() {
		c.passwordHasher = authService.NewPasswordHasher()
	})
	return c.passwordHasher
}

// SigningKey returns the token signing key, decoded once.
func (c *Container) SigningKey() (authService.SigningKey, error) {
	var err error
	c.signingKeyInit.Do(func() {
		c.signingKey, err = c.initSigningKey()
		if err != nil {
			c.initErrors["signingKey"] = err
		}
	})
	if err != nil {
		return authService.SigningKey{}, err
	}
	if storedErr, exists := c.initErrors["signingKey"]; exists {
		return authService.SigningKey{}, storedErr
	}
	return c.signingKey, nil
}

// TokenCodec returns the access token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = c.initTokenCodec()
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// AuthUseCase returns the authenticator.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the login and validate HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initSigningKey decodes AUTH_SIGNING_KEY, unwrapping it through KMS when configured.
func (c *Container) initSigningKey() (authService.SigningKey, error) {
	if c.config.AuthSigningKey == "" {
		return authService.SigningKey{}, fmt.Errorf("AUTH_SIGNING_KEY is required")
	}

	if !c.config.KMSEnabled() {
		key, err := authService.ParseSigningKey(c.config.AuthSigningKey)
		if err != nil {
			return authService.SigningKey{}, fmt.Errorf("failed to parse signing key: %w", err)
		}
		c.Logger().Info("signing key loaded", "key_bytes", key.Len())
		return key, nil
	}

	key, err := authService.UnwrapSigningKey(
		context.Background(),
		c.KMSService(),
		c.config.KMSProvider,
		c.config.KMSKeyURI,
		c.config.AuthSigningKey,
	)
	if err != nil {
		return authService.SigningKey{}, fmt.Errorf("failed to unwrap signing key: %w", err)
	}

	c.Logger().Info("signing key unwrapped", "kms_provider", c.config.KMSProvider, "key_bytes", key.Len())
	return key, nil
}

// initTokenCodec creates the codec bound to the signing key.
func (c *Container) initTokenCodec() (authService.TokenCodec, error) {
	key, err := c.SigningKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get signing key for token codec: %w", err)
	}

	return authService.NewTokenCodec(
		key,
		c.config.AuthTokenExpiration,
		authService.WithIssuer(c.config.AuthTokenIssuer),
	), nil
}

// initAuthUseCase creates the authenticator, wrapped with metrics when enabled.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth use case: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(users, c.PasswordHasher(), codec)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the auth HTTP handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	uc, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(uc, c.Logger()), nil
}
