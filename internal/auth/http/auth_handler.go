// Package http provides HTTP handlers and middleware for login and token validation.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/patientcare/auth-service/internal/auth/http/dto"
	authUseCase "github.com/patientcare/auth-service/internal/auth/usecase"
	"github.com/patientcare/auth-service/internal/httputil"
)

// bearerPrefix is matched case-sensitively, including the single space.
const bearerPrefix = "Bearer "

// AuthHandler handles HTTP requests for login and token validation.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler exchanges an email and password for an access token.
// POST /login - No authentication required.
// Returns 200 with token and expiration, 400 with violations, or 401 with no body.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	token, ok, err := h.authUseCase.Authenticate(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if !ok {
		h.logger.Debug("login rejected", slog.String("client_ip", c.ClientIP()))
		httputil.AbortUnauthorized(c)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessTokenToResponse(token))
}

// ValidateHandler checks the bearer token in the Authorization header.
// GET /validate - Returns 200 with no body when valid, 401 with no body otherwise.
func (h *AuthHandler) ValidateHandler(c *gin.Context) {
	token, ok := extractBearerToken(c.GetHeader("Authorization"))
	if !ok {
		h.logger.Debug("token validation failed: malformed authorization header")
		httputil.AbortUnauthorized(c)
		return
	}

	if !h.authUseCase.IsValid(c.Request.Context(), token) {
		h.logger.Debug("token validation failed: invalid token")
		httputil.AbortUnauthorized(c)
		return
	}

	c.Status(http.StatusOK)
}

// extractBearerToken returns the token following "Bearer " in header.
func extractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
