package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type voucher struct {
		code  string
		guard guard.ConstructorGuard
	}
	errVoucherNotConstructed := errors.New("voucher must be created via newVoucher")

	newVoucher := func(code string) (voucher, error) {
		if code == "" {
			return voucher{}, errors.New("code is required")
		}
		return voucher{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	v, err := newVoucher("WELCOME10")
	require.NoError(t, err)
	require.NoError(t, v.guard.Validate(errVoucherNotConstructed))

	var zero voucher
	assert.Equal(t, errVoucherNotConstructed, zero.guard.Validate(errVoucherNotConstructed))
}
