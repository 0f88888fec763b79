package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	u := User{}
	require.NoError(t, u.SetPassword("segredo-forte"))

	assert.NotEqual(t, "segredo-forte", u.PasswordHash)
	assert.True(t, u.CheckPassword("segredo-forte"))
	assert.False(t, u.CheckPassword("segredo-errado"))
}

func TestCheckPasswordWithoutHash(t *testing.T) {
	u := User{}
	assert.False(t, u.CheckPassword("qualquer"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("planner"))
	assert.True(t, IsValidRole("guest"))
	assert.False(t, IsValidRole("root"))
	assert.False(t, IsValidRole(""))
}

func TestRolePredicates(t *testing.T) {
	admin := User{Role: RoleAdmin}
	planner := User{Role: RolePlanner}
	guest := User{Role: RoleGuest}

	assert.True(t, admin.IsAdmin())
	assert.False(t, planner.IsAdmin())

	assert.True(t, admin.IsAdminOrPlanner())
	assert.True(t, planner.IsAdminOrPlanner())
	assert.False(t, guest.IsAdminOrPlanner())
}
