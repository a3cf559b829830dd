package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	for input, want := range map[string]kernel.Role{
		"client":    kernel.RoleClient,
		"store":     kernel.RoleStore,
		"Deliverer": kernel.RoleDeliverer,
		" admin ":   kernel.RoleAdmin,
	} {
		got, err := kernel.RoleFromString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := kernel.RoleFromString("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, kernel.RoleStore.Validate())
	require.Error(t, kernel.RoleUnknown.Validate())
	require.Error(t, kernel.Role(42).Validate())
	assert.Equal(t, "unknown", kernel.Role(42).String())
}
