// Package integration provides end-to-end tests for the auth API against PostgreSQL and MySQL.
package integration

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patientcare/auth-service/internal/app"
	authDTO "github.com/patientcare/auth-service/internal/auth/http/dto"
	"github.com/patientcare/auth-service/internal/config"
	"github.com/patientcare/auth-service/internal/testutil"
	userDomain "github.com/patientcare/auth-service/internal/user/domain"
)

const (
	testEmail    = "nurse@example.com"
	testPassword = "Str0ngPassw0rd"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	cancel    context.CancelFunc
	dbDriver  string
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	authorization string,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// generateSigningKey returns a fresh base64-encoded 32-byte signing key.
func generateSigningKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(key)
}

// setupIntegrationTest migrates the database, seeds a user and starts the API.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		testutil.SkipIfNoPostgres(t)
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		testutil.SkipIfNoMySQL(t)
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	cfg := &config.Config{
		DBDriver:                     dbDriver,
		DBConnectionString:           dsn,
		DBMaxOpenConnections:         10,
		DBMaxIdleConnections:         5,
		DBConnMaxLifetime:            time.Hour,
		ServerHost:                   "localhost",
		ServerPort:                   8080,
		LogLevel:                     "error",
		AuthSigningKey:               generateSigningKey(t),
		AuthTokenExpiration:          time.Hour,
		AuthTokenIssuer:              "auth-service",
		RateLimitLoginEnabled:        true,
		RateLimitLoginRequestsPerSec: 100,
		RateLimitLoginBurst:          100,
		MetricsEnabled:               true,
		MetricsNamespace:             "auth_integration",
	}

	container := app.NewContainer(cfg)

	userUseCase, err := container.UserUseCase()
	require.NoError(t, err, "failed to get user use case")

	_, err = userUseCase.Create(context.Background(), &userDomain.CreateUserInput{
		Email:    testEmail,
		Password: testPassword,
		Role:     userDomain.RoleAdmin,
	})
	require.NoError(t, err, "failed to seed user")

	runCtx, cancel := context.WithCancel(context.Background())
	httpSrv, err := container.HTTPServer(runCtx)
	require.NoError(t, err, "failed to get HTTP server")
	gin.SetMode(gin.TestMode)

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    httptest.NewServer(handler),
		cancel:    cancel,
		dbDriver:  dbDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}
	if ctx.cancel != nil {
		ctx.cancel()
	}

	// The container never started its http.Server, so Shutdown only releases pools and providers.
	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}
}

var databases = []struct {
	name     string
	dbDriver string
}{
	{"PostgreSQL", "postgres"},
	{"MySQL", "mysql"},
}

func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range databases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			t.Run("01_HealthCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil, "")
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "healthy", response["status"])
			})

			t.Run("02_ReadinessCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil, "")
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "ready", response["status"])
			})
		})
	}
}

func TestIntegration_Auth_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range databases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var token string

			t.Run("01_Login", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/login", authDTO.LoginRequest{
					Email:    testEmail,
					Password: testPassword,
				}, "")
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response authDTO.LoginResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.NotEmpty(t, response.Token)
				assert.True(t, response.ExpiresAt.After(time.Now()))
				token = response.Token
			})

			t.Run("02_LoginEmailIsCaseInsensitive", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodPost, "/login", authDTO.LoginRequest{
					Email:    "Nurse@Example.com",
					Password: testPassword,
				}, "")
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			})

			t.Run("03_ValidateToken", func(t *testing.T) {
				require.NotEmpty(t, token)
				resp, body := ctx.makeRequest(t, http.MethodGet, "/validate", nil, "Bearer "+token)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Empty(t, body)
			})

			t.Run("04_ValidateTamperedToken", func(t *testing.T) {
				require.NotEmpty(t, token)
				resp, body := ctx.makeRequest(t, http.MethodGet, "/validate", nil, "Bearer "+token[:len(token)-2])
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Empty(t, body)
			})

			t.Run("05_ValidateMissingHeader", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/validate", nil, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Empty(t, body)
			})

			t.Run("06_LoginWrongPassword", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/login", authDTO.LoginRequest{
					Email:    testEmail,
					Password: "WrongPassw0rd",
				}, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Empty(t, body)
			})

			t.Run("07_LoginUnknownUser", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/login", authDTO.LoginRequest{
					Email:    "ghost@example.com",
					Password: testPassword,
				}, "")
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Empty(t, body)
			})

			t.Run("08_LoginValidationError", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/login", authDTO.LoginRequest{
					Email:    "not-an-email",
					Password: "short",
				}, "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "validation_error", response["error"])
			})

			t.Run("09_DuplicateUserRejected", func(t *testing.T) {
				userUseCase, err := ctx.container.UserUseCase()
				require.NoError(t, err)

				_, err = userUseCase.Create(context.Background(), &userDomain.CreateUserInput{
					Email:    testEmail,
					Password: testPassword,
				})
				assert.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
				assert.Equal(t, 1, testutil.CountUsers(t, ctx.db))
			})
		})
	}
}
