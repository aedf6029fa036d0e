package usecase

import (
	"context"
	"time"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	"github.com/patientcare/auth-service/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for login attempts.
// Status is "success", "rejected" for bad credentials, or "error".
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.AccessToken, bool, error) {
	start := time.Now()
	token, ok, err := a.next.Authenticate(ctx, input)

	status := metrics.StatusSuccess
	switch {
	case err != nil:
		status = metrics.StatusError
	case !ok:
		status = metrics.StatusRejected
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, ok, err
}

// IsValid records metrics for token validations.
func (a *authUseCaseWithMetrics) IsValid(ctx context.Context, token string) bool {
	start := time.Now()
	valid := a.next.IsValid(ctx, token)

	status := metrics.StatusValid
	if !valid {
		status = metrics.StatusInvalid
	}

	a.metrics.RecordOperation(ctx, "auth", "token_validate", status)
	a.metrics.RecordDuration(ctx, "auth", "token_validate", time.Since(start), status)

	return valid
}
