package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should accept valid addresses", func(t *testing.T) {
		valid := []string{
			"a@b.com",
			"customer@example.com",
			"first.last+tag@sub.example.co",
		}

		for _, address := range valid {
			email, err := kernel.NewEmail(address)

			require.NoError(t, err, address)
			assert.Equal(t, address, email.String())
			require.NoError(t, email.Validate())
		}
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		email, err := kernel.NewEmail("  a@b.com ")

		require.NoError(t, err)
		assert.Equal(t, "a@b.com", email.String())
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		invalid := []string{
			"not-an-email",
			"missing-domain@",
			"@missing-local.com",
			"no-dot@domain",
			"two@@example.com",
		}

		for _, address := range invalid {
			_, err := kernel.NewEmail(address)

			require.Error(t, err, address)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, address)
		}
	})
}

func TestEmail_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var email kernel.Email

		err := email.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email must be created")
	})
}

func TestEmail_IsEqual(t *testing.T) {
	a, _ := kernel.NewEmail("a@b.com")
	b, _ := kernel.NewEmail("a@b.com")
	c, _ := kernel.NewEmail("c@d.com")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
