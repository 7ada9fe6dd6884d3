//go:build unit

package checks

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceOf(t *testing.T) {
	t.Parallel()

	t.Run("concrete type match returns value", func(t *testing.T) {
		t.Parallel()

		got, err := InstanceOf[string](any("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("interface satisfaction", func(t *testing.T) {
		t.Parallel()

		r, err := InstanceOf[io.Reader](any(strings.NewReader("x")))
		require.NoError(t, err)
		require.NotNil(t, r)
	})

	t.Run("mismatch fails with default message", func(t *testing.T) {
		t.Parallel()

		got, err := InstanceOf[string](any(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "Argument is not an instance of string", err.Error())
		assert.Zero(t, got)
	})

	t.Run("mismatch with custom message", func(t *testing.T) {
		t.Parallel()

		_, err := InstanceOf[io.Reader](any(1), WithMessage("reader required"))
		require.Error(t, err)
		assert.Equal(t, "reader required", err.Error())
	})

	t.Run("nil value fails", func(t *testing.T) {
		t.Parallel()

		_, err := InstanceOf[string](nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
