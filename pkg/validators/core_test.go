package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inputkit/inputkit/pkg/validators"
)

func TestNewBoolean(t *testing.T) {
	t.Run("returns empty string when predicate passes", func(t *testing.T) {
		v, err := validators.NewBoolean(func(s string) bool { return true }, "nope")
		require.NoError(t, err)
		assert.Empty(t, v.Validate("anything"))
	})

	t.Run("returns message when predicate fails", func(t *testing.T) {
		v, err := validators.NewBoolean(func(s string) bool { return false }, "nope")
		require.NoError(t, err)
		assert.Equal(t, "nope", v.Validate("anything"))
	})

	t.Run("empty input passes without invoking predicate", func(t *testing.T) {
		called := false
		v, err := validators.NewBoolean(func(s string) bool {
			called = true
			return false
		}, "nope")
		require.NoError(t, err)
		assert.Empty(t, v.Validate(""))
		assert.False(t, called)
	})

	t.Run("empty input is checked with WithAllowEmpty false", func(t *testing.T) {
		v, err := validators.NewBoolean(func(s string) bool { return false }, "nope",
			validators.WithAllowEmpty(false))
		require.NoError(t, err)
		assert.Equal(t, "nope", v.Validate(""))
	})

	t.Run("WithMessage overrides the default", func(t *testing.T) {
		v, err := validators.NewBoolean(func(s string) bool { return false }, "default",
			validators.WithMessage("custom"))
		require.NoError(t, err)
		assert.Equal(t, "custom", v.Validate("x"))
	})

	t.Run("nil predicate is a configuration error", func(t *testing.T) {
		_, err := validators.NewBoolean(nil, "nope")
		assert.ErrorIs(t, err, validators.ErrNilPredicate)
	})

	t.Run("empty message is a configuration error", func(t *testing.T) {
		_, err := validators.NewBoolean(func(s string) bool { return true }, "")
		assert.ErrorIs(t, err, validators.ErrEmptyMessage)
	})

	t.Run("rejects WithExactly", func(t *testing.T) {
		_, err := validators.NewBoolean(func(s string) bool { return true }, "nope",
			validators.WithExactly(2))
		assert.ErrorIs(t, err, validators.ErrExactCountUnsupported)
	})
}

func TestNewCountPrecedence(t *testing.T) {
	messages := validators.CountMessages{
		Missing:    "missing",
		Present:    "present",
		WrongCount: "wrong count",
	}
	fixed := func(n int) func(string) int {
		return func(string) int { return n }
	}

	t.Run("no expectation requires existence", func(t *testing.T) {
		v, err := validators.NewCount(fixed(0), messages)
		require.NoError(t, err)
		assert.Equal(t, "missing", v.Validate("x"))
	})

	t.Run("no expectation passes on any nonzero count", func(t *testing.T) {
		v, err := validators.NewCount(fixed(7), messages)
		require.NoError(t, err)
		assert.Empty(t, v.Validate("x"))
	})

	t.Run("positive expectation with zero actual reports missing", func(t *testing.T) {
		v, err := validators.NewCount(fixed(0), messages, validators.WithExactly(3))
		require.NoError(t, err)
		assert.Equal(t, "missing", v.Validate("x"))
	})

	t.Run("zero expectation with nonzero actual reports present", func(t *testing.T) {
		v, err := validators.NewCount(fixed(2), messages, validators.WithExactly(0))
		require.NoError(t, err)
		assert.Equal(t, "present", v.Validate("x"))
	})

	t.Run("zero expectation with zero actual passes", func(t *testing.T) {
		v, err := validators.NewCount(fixed(0), messages, validators.WithExactly(0))
		require.NoError(t, err)
		assert.Empty(t, v.Validate("x"))
	})

	t.Run("exact mismatch reports wrong count only when feature exists", func(t *testing.T) {
		v, err := validators.NewCount(fixed(2), messages, validators.WithExactly(3))
		require.NoError(t, err)
		assert.Equal(t, "wrong count", v.Validate("x"))
	})

	t.Run("exact match passes", func(t *testing.T) {
		v, err := validators.NewCount(fixed(3), messages, validators.WithExactly(3))
		require.NoError(t, err)
		assert.Empty(t, v.Validate("x"))
	})

	t.Run("empty input passes without counting", func(t *testing.T) {
		called := false
		v, err := validators.NewCount(func(string) int {
			called = true
			return 0
		}, messages)
		require.NoError(t, err)
		assert.Empty(t, v.Validate(""))
		assert.False(t, called)
	})

	t.Run("empty input is counted with WithAllowEmpty false", func(t *testing.T) {
		v, err := validators.NewCount(fixed(0), messages, validators.WithAllowEmpty(false))
		require.NoError(t, err)
		assert.Equal(t, "missing", v.Validate(""))
	})

	t.Run("WithMessage replaces all three messages", func(t *testing.T) {
		v, err := validators.NewCount(fixed(0), messages, validators.WithMessage("custom"))
		require.NoError(t, err)
		assert.Equal(t, "custom", v.Validate("x"))
	})

	t.Run("negative expectation is a configuration error", func(t *testing.T) {
		_, err := validators.NewCount(fixed(0), messages, validators.WithExactly(-1))
		assert.ErrorIs(t, err, validators.ErrNegativeCount)
	})

	t.Run("nil count function is a configuration error", func(t *testing.T) {
		_, err := validators.NewCount(nil, messages)
		assert.ErrorIs(t, err, validators.ErrNilCountFunc)
	})

	t.Run("missing message is a configuration error", func(t *testing.T) {
		_, err := validators.NewCount(fixed(0), validators.CountMessages{Missing: "m", Present: "p"})
		assert.ErrorIs(t, err, validators.ErrEmptyMessage)
	})
}

func TestCombine(t *testing.T) {
	pass := func(string) bool { return true }
	fail := func(string) bool { return false }

	t.Run("returns first failure in order", func(t *testing.T) {
		v1 := validators.Must(validators.NewBoolean(fail, "first"))
		v2 := validators.Must(validators.NewBoolean(fail, "second"))
		combined := validators.Combine(v1, v2)
		assert.Equal(t, "first", combined.Validate("x"))
	})

	t.Run("short-circuits after the first failure", func(t *testing.T) {
		secondCalled := false
		v1 := validators.Must(validators.NewBoolean(fail, "first"))
		v2 := validators.Must(validators.NewBoolean(func(string) bool {
			secondCalled = true
			return true
		}, "second"))
		combined := validators.Combine(v1, v2)
		assert.Equal(t, "first", combined.Validate("x"))
		assert.False(t, secondCalled)
	})

	t.Run("passes when every validator passes", func(t *testing.T) {
		v1 := validators.Must(validators.NewBoolean(pass, "first"))
		v2 := validators.Must(validators.NewBoolean(pass, "second"))
		assert.Empty(t, validators.Combine(v1, v2).Validate("x"))
	})

	t.Run("falls through to later validators", func(t *testing.T) {
		v1 := validators.Must(validators.NewBoolean(pass, "first"))
		v2 := validators.Must(validators.NewBoolean(fail, "second"))
		assert.Equal(t, "second", validators.Combine(v1, v2).Validate("x"))
	})

	t.Run("zero validators accept everything", func(t *testing.T) {
		assert.Empty(t, validators.Combine().Validate("anything"))
	})

	t.Run("is itself composable", func(t *testing.T) {
		inner := validators.Combine(validators.Must(validators.NewBoolean(fail, "inner")))
		outer := validators.Combine(validators.Must(validators.NewBoolean(pass, "ok")), inner)
		assert.Equal(t, "inner", outer.Validate("x"))
	})
}

func TestMust(t *testing.T) {
	t.Run("returns the validator when construction succeeded", func(t *testing.T) {
		v := validators.Must(validators.MinLength(3))
		assert.NotNil(t, v)
	})

	t.Run("panics on configuration error", func(t *testing.T) {
		assert.Panics(t, func() {
			validators.Must(validators.MinLength(-1))
		})
	})
}
