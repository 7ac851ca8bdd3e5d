package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleLearner))
	assert.True(t, IsValidRole(RoleTrainer))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleSuperAdmin))

	assert.False(t, IsValidRole("MANAGER"))
	assert.False(t, IsValidRole("learner"))
	assert.False(t, IsValidRole(""))
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAtLeast(RoleLearner, RoleLearner))
	assert.True(t, RoleAtLeast(RoleTrainer, RoleLearner))
	assert.True(t, RoleAtLeast(RoleAdmin, RoleTrainer))
	assert.True(t, RoleAtLeast(RoleSuperAdmin, RoleAdmin))

	assert.False(t, RoleAtLeast(RoleLearner, RoleTrainer))
	assert.False(t, RoleAtLeast(RoleTrainer, RoleAdmin))
	assert.False(t, RoleAtLeast(RoleAdmin, RoleSuperAdmin))

	// Unknown roles never clear any threshold.
	assert.False(t, RoleAtLeast("MANAGER", RoleLearner))
	assert.False(t, RoleAtLeast(RoleAdmin, "MANAGER"))
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, IsSuperAdmin(RoleSuperAdmin))
	assert.False(t, IsSuperAdmin(RoleAdmin))
	assert.False(t, IsSuperAdmin(""))
}
