package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customValidation "github.com/patientcare/auth-service/internal/validation"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name           string
		request        LoginRequest
		expectedFields []string
	}{
		{
			name:    "Success_Valid",
			request: LoginRequest{Email: "alice@example.com", Password: "password"},
		},
		{
			name:    "Success_LongPassword",
			request: LoginRequest{Email: "alice@example.com", Password: strings.Repeat("p", 200)},
		},
		{
			name:           "Error_MissingEmail",
			request:        LoginRequest{Password: "password"},
			expectedFields: []string{"email"},
		},
		{
			name:           "Error_InvalidEmail",
			request:        LoginRequest{Email: "not-an-email", Password: "password"},
			expectedFields: []string{"email"},
		},
		{
			name:           "Error_MissingPassword",
			request:        LoginRequest{Email: "alice@example.com"},
			expectedFields: []string{"password"},
		},
		{
			name:           "Error_ShortPassword",
			request:        LoginRequest{Email: "alice@example.com", Password: "1234567"},
			expectedFields: []string{"password"},
		},
		{
			name:           "Error_Both",
			request:        LoginRequest{Email: "bad", Password: "short"},
			expectedFields: []string{"email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if len(tt.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations := customValidation.ToViolations(err)
			fields := make([]string, 0, len(violations))
			for _, v := range violations {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestLoginRequest_ToInput(t *testing.T) {
	req := LoginRequest{Email: "alice@example.com", Password: "password"}
	input := req.ToInput()

	assert.Equal(t, "alice@example.com", input.Email)
	assert.Equal(t, "password", input.Password)
}
