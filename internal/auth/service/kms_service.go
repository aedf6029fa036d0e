package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsSchemes maps a KMS_PROVIDER value to the URI scheme its key URI must use.
var kmsSchemes = map[string]string{
	"localsecrets":  "base64key://",
	"gcpkms":        "gcpkms://",
	"awskms":        "awskms://",
	"azurekeyvault": "azurekeyvault://",
	"hashivault":    "hashivault://",
}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// ValidateKMSProvider checks that provider is known and keyURI uses its scheme.
func ValidateKMSProvider(provider, keyURI string) error {
	scheme, ok := kmsSchemes[provider]
	if !ok {
		return fmt.Errorf("unsupported KMS provider %q", provider)
	}
	if !strings.HasPrefix(keyURI, scheme) {
		return fmt.Errorf("KMS key URI for provider %q must start with %s", provider, scheme)
	}
	return nil
}

// UnwrapSigningKey decrypts a base64 KMS ciphertext into a SigningKey.
func UnwrapSigningKey(
	ctx context.Context,
	kms KMSService,
	provider, keyURI, ciphertext string,
) (SigningKey, error) {
	if err := ValidateKMSProvider(provider, keyURI); err != nil {
		return SigningKey{}, err
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return SigningKey{}, fmt.Errorf("%w: ciphertext is not valid base64", authDomain.ErrInvalidSigningKey)
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return SigningKey{}, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return SigningKey{}, fmt.Errorf("failed to decrypt signing key: %w", err)
	}
	defer zero(plaintext)

	return NewSigningKey(plaintext)
}

// WrapSigningKey encrypts raw with the KMS key and returns the base64 ciphertext.
func WrapSigningKey(
	ctx context.Context,
	kms KMSService,
	provider, keyURI string,
	raw []byte,
) (string, error) {
	if err := ValidateKMSProvider(provider, keyURI); err != nil {
		return "", err
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt signing key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
