package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyalawy/ballers-app/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@b.co",
	}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}

	invalid := []string{
		"",
		"   ",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"user@",
		"Name <user@example.com>",
	}
	for _, email := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}
}

func TestOTPCode(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.OTPCode("code", "123456")))
	assert.NoError(t, validator.Apply(validator.OTPCode("code", "000000")))

	invalid := []string{"", "12345", "1234567", "12345a", "12 456", "abcdef", "12345۶"}
	for _, code := range invalid {
		assert.Error(t, validator.Apply(validator.OTPCode("code", code)), code)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("name", "Alex")))
	assert.Error(t, validator.Apply(validator.Required("name", "")))
	assert.Error(t, validator.Apply(validator.Required("name", "   ")))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("collects all failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.ValidEmail("email", "bad"),
			validator.OTPCode("code", "bad"),
		)
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Len(t, verrs, 2)
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("code"))
		assert.Equal(t, []string{"must be a 6-digit code"}, verrs.Get("code"))
	})

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validator.Apply(
			validator.ValidEmail("email", "a@b.com"),
			validator.OTPCode("code", "123456"),
		))
	})
}
