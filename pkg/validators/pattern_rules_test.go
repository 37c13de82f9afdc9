package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inputkit/inputkit/pkg/validators"
)

func TestMatchRegex(t *testing.T) {
	t.Run("matches anywhere in the input", func(t *testing.T) {
		v, err := validators.MatchRegex(`[0-9]{3}`)
		require.NoError(t, err)
		assert.Empty(t, v.Validate("order 123 shipped"))
	})

	t.Run("fails with the pattern in the default message", func(t *testing.T) {
		v, err := validators.MatchRegex(`[0-9]{3}`)
		require.NoError(t, err)
		assert.Equal(t, "Input should match regex: [0-9]{3}", v.Validate("no digits"))
	})

	t.Run("anchored pattern requires a full-string match", func(t *testing.T) {
		v, err := validators.MatchRegex(`^[a-z]+$`)
		require.NoError(t, err)
		assert.Empty(t, v.Validate("abc"))
		assert.NotEmpty(t, v.Validate("abc1"))
	})

	t.Run("invalid pattern is a configuration error", func(t *testing.T) {
		_, err := validators.MatchRegex(`([`)
		assert.ErrorIs(t, err, validators.ErrInvalidPattern)
	})
}

func TestInteger(t *testing.T) {
	v := validators.Must(validators.Integer(validators.WithAllowEmpty(false)))

	t.Run("accepts unsigned integers", func(t *testing.T) {
		assert.Empty(t, v.Validate("12345"))
		assert.Empty(t, v.Validate("0"))
	})

	t.Run("rejects non-integers", func(t *testing.T) {
		for _, input := range []string{"12.3", "-5", "", "12a", "1 2"} {
			assert.Equal(t, "Input should be an integer", v.Validate(input), "input %q", input)
		}
	})

	t.Run("empty input is exempt by default", func(t *testing.T) {
		lenient := validators.Must(validators.Integer())
		assert.Empty(t, lenient.Validate(""))
	})
}

func TestNumber(t *testing.T) {
	v := validators.Must(validators.Number(validators.WithAllowEmpty(false)))

	t.Run("accepts decimal numbers", func(t *testing.T) {
		for _, input := range []string{"12", "12.3", "-12.3", ".5", "5.", "-0.5", "-7"} {
			assert.Empty(t, v.Validate(input), "input %q", input)
		}
	})

	t.Run("rejects non-numbers", func(t *testing.T) {
		for _, input := range []string{"abc", "1.2.3", "-", ".", "1e5", "12,3", ""} {
			assert.Equal(t, "Input should be a number", v.Validate(input), "input %q", input)
		}
	})
}

func TestEmail(t *testing.T) {
	v := validators.Must(validators.Email(validators.WithAllowEmpty(false)))

	t.Run("accepts plausible addresses", func(t *testing.T) {
		for _, input := range []string{"a.b@example.com", "john.doe42@mail.example.org", "jd@example.co.uk"} {
			assert.Empty(t, v.Validate(input), "input %q", input)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"@example.com", "a@.com", "plainaddress", "a.b@example", ".ab@example.com"} {
			assert.Equal(t, "Input should be a valid email address", v.Validate(input), "input %q", input)
		}
	})

	t.Run("custom message overrides the default", func(t *testing.T) {
		custom := validators.Must(validators.Email(validators.WithMessage("not an email")))
		assert.Equal(t, "not an email", custom.Validate("nope"))
	})
}
