package guard_test

import (
	"errors"
	"testing"

	"configurator/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("draft command not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type confirmCommand struct {
		draftID string
		guard   guard.ConstructorGuard
	}

	errCommandNotConstructed := errors.New("confirmCommand must be created via newConfirmCommand")

	newConfirmCommand := func(draftID string) (confirmCommand, error) {
		if draftID == "" {
			return confirmCommand{}, errors.New("draft id is required")
		}
		return confirmCommand{draftID: draftID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should accept command built by constructor", func(t *testing.T) {
		cmd, err := newConfirmCommand("d-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
	})

	t.Run("should reject literal command", func(t *testing.T) {
		cmd := confirmCommand{draftID: "d-1"}

		require.ErrorIs(t, cmd.guard.Validate(errCommandNotConstructed), errCommandNotConstructed)
	})

	t.Run("should survive copies by value", func(t *testing.T) {
		cmd, _ := newConfirmCommand("d-1")
		copied := cmd

		require.NoError(t, copied.guard.Validate(errCommandNotConstructed))
	})
}
