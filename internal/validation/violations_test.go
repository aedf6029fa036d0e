package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string
	Password string
}

func (c *credentials) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required, Email),
		validation.Field(&c.Password, validation.Required, validation.Length(8, 0)),
	)
}

func TestToViolations(t *testing.T) {
	t.Run("Success_NilError", func(t *testing.T) {
		assert.Nil(t, ToViolations(nil))
	})

	t.Run("Success_SortedFieldViolations", func(t *testing.T) {
		req := &credentials{Email: "invalid-email", Password: "123"}

		violations := ToViolations(req.Validate())

		require.Len(t, violations, 2)
		assert.Equal(t, "Email", violations[0].Field)
		assert.Equal(t, "validation_email_format", violations[0].Code)
		assert.Equal(t, "must be a valid email address", violations[0].Message)
		assert.Equal(t, "Password", violations[1].Field)
		assert.Equal(t, "validation_length_too_short", violations[1].Code)
	})

	t.Run("Success_NestedErrors", func(t *testing.T) {
		err := validation.Errors{
			"user": validation.Errors{
				"email": validation.NewError("validation_required", "cannot be blank"),
			},
		}

		violations := ToViolations(err)

		require.Len(t, violations, 1)
		assert.Equal(t, "user.email", violations[0].Field)
		assert.Equal(t, "validation_required", violations[0].Code)
	})

	t.Run("Success_PlainError", func(t *testing.T) {
		violations := ToViolations(errors.New("unexpected EOF"))

		require.Len(t, violations, 1)
		assert.Empty(t, violations[0].Field)
		assert.Equal(t, "validation_invalid", violations[0].Code)
		assert.Equal(t, "unexpected EOF", violations[0].Message)
	})
}
