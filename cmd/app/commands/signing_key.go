package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/patientcare/auth-service/internal/auth/service"
)

// RunCreateSigningKey generates a random 32-byte token signing key.
// With kmsProvider and kmsKeyURI set, the key is encrypted with KMS and the
// ciphertext is printed; otherwise the raw key is printed base64-encoded.
// Key material is zeroed from memory after encoding.
//
// Output format:
//   - AUTH_SIGNING_KEY="<base64 key or base64 KMS ciphertext>"
//   - KMS_PROVIDER="<provider>" and KMS_KEY_URI="<uri>" in KMS mode
func RunCreateSigningKey(
	ctx context.Context,
	kmsService authService.KMSService,
	logger *slog.Logger,
	out io.Writer,
	kmsProvider string,
	kmsKeyURI string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be set together")
	}

	raw, err := authService.GenerateSigningKey()
	if err != nil {
		return err
	}
	defer func() {
		for i := range raw {
			raw[i] = 0
		}
	}()

	if kmsProvider == "" {
		logger.Warn("signing key is not wrapped with KMS; store it in a secrets manager")

		_, _ = fmt.Fprintln(out, "# Signing Key Configuration")
		_, _ = fmt.Fprintln(out, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "AUTH_SIGNING_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(raw))
		return nil
	}

	wrapped, err := authService.WrapSigningKey(ctx, kmsService, kmsProvider, kmsKeyURI, raw)
	if err != nil {
		return fmt.Errorf("failed to wrap signing key: %w", err)
	}

	logger.Info("signing key wrapped with KMS", slog.String("kms_provider", kmsProvider))

	_, _ = fmt.Fprintln(out, "# Signing Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(out, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	_, _ = fmt.Fprintf(out, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(out, "AUTH_SIGNING_KEY=\"%s\"\n", wrapped)

	return nil
}
