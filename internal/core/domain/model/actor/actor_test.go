package actor_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(actor.UnknownRole))
		assert.Equal(t, 1, int(actor.Customer))
		assert.Equal(t, 2, int(actor.Admin))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		for _, role := range []actor.Role{actor.Customer, actor.Admin} {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		err := actor.UnknownRole.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should reject out of range roles", func(t *testing.T) {
		for _, role := range []actor.Role{actor.Role(-1), actor.Role(3), actor.Role(100)} {
			require.Error(t, role.Validate())
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return lowercase role names", func(t *testing.T) {
		assert.Equal(t, "customer", actor.Customer.String())
		assert.Equal(t, "admin", actor.Admin.String())
		assert.Equal(t, "unknown", actor.UnknownRole.String())
		assert.Equal(t, "unknown", actor.Role(42).String())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid role names", func(t *testing.T) {
		role, err := actor.RoleFromString("customer")
		require.NoError(t, err)
		assert.Equal(t, actor.Customer, role)

		role, err = actor.RoleFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, actor.Admin, role)
	})

	t.Run("should reject invalid role names", func(t *testing.T) {
		for _, input := range []string{"", "superuser", "Admin", "CUSTOMER"} {
			role, err := actor.RoleFromString(input)

			require.Error(t, err)
			assert.Equal(t, actor.UnknownRole, role)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, actor.Customer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, actor.Customer, a.Role())
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, actor.Customer)
		require.Error(t, err)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), actor.UnknownRole)
		require.Error(t, err)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var a actor.Actor
		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestActor_Owns(t *testing.T) {
	t.Run("customer owns matching customer id", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := actor.NewActor(id, actor.Customer)
		require.NoError(t, err)

		assert.True(t, a.Owns(id))
		assert.False(t, a.Owns(kernel.NewUUID()))
	})

	t.Run("admin never owns orders", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := actor.NewActor(id, actor.Admin)
		require.NoError(t, err)

		assert.False(t, a.Owns(id))
		assert.True(t, a.IsAdmin())
	})
}
