package services

import (
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func TestCanManageCourse(t *testing.T) {
	owner := models.User{Role: models.RoleTrainer}
	owner.ID = 1
	otherTrainer := models.User{Role: models.RoleTrainer}
	otherTrainer.ID = 2
	learner := models.User{Role: models.RoleLearner}
	learner.ID = 3
	admin := models.User{Role: models.RoleAdmin}
	admin.ID = 4
	super := models.User{Role: models.RoleSuperAdmin}
	super.ID = 5

	course := courseModels.Course{OwnerID: owner.ID}

	assert.True(t, CanManageCourse(owner, course))
	assert.False(t, CanManageCourse(otherTrainer, course))
	assert.False(t, CanManageCourse(learner, course))
	assert.True(t, CanManageCourse(admin, course))
	assert.True(t, CanManageCourse(super, course))
}

func TestCanManageUsers(t *testing.T) {
	learner := models.User{Role: models.RoleLearner}
	trainer := models.User{Role: models.RoleTrainer}
	admin := models.User{Role: models.RoleAdmin}
	super := models.User{Role: models.RoleSuperAdmin}

	assert.False(t, CanManageUsers(learner, learner))
	assert.False(t, CanManageUsers(trainer, learner))
	assert.True(t, CanManageUsers(admin, learner))
	assert.True(t, CanManageUsers(admin, trainer))

	// Superadmin accounts are off limits to regular admins.
	assert.False(t, CanManageUsers(admin, super))
	assert.True(t, CanManageUsers(super, super))
	assert.True(t, CanManageUsers(super, admin))
}

func TestCanCreateRole(t *testing.T) {
	trainer := models.User{Role: models.RoleTrainer}
	admin := models.User{Role: models.RoleAdmin}
	super := models.User{Role: models.RoleSuperAdmin}

	assert.False(t, CanCreateRole(trainer, models.RoleLearner))
	assert.True(t, CanCreateRole(admin, models.RoleLearner))
	assert.True(t, CanCreateRole(admin, models.RoleTrainer))
	assert.True(t, CanCreateRole(admin, models.RoleAdmin))

	// Only a superadmin mints another superadmin.
	assert.False(t, CanCreateRole(admin, models.RoleSuperAdmin))
	assert.True(t, CanCreateRole(super, models.RoleSuperAdmin))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(NewValidationError("bad")))
	assert.Equal(t, 404, HTTPStatus(NewNotFoundError("missing")))
	assert.Equal(t, 403, HTTPStatus(NewAuthorizationError("nope")))
	assert.Equal(t, 409, HTTPStatus(NewConflictError("dup")))
	assert.Equal(t, 400, HTTPStatus(NewStateError("wrong state")))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}
