package services

import (
	"lms/models"
	courseModels "lms/models/course"
)

// CanManageCourse reports whether acting may create, edit, publish or remove
// the given course. Admins manage any course; trainers only their own.
func CanManageCourse(acting models.User, course courseModels.Course) bool {
	if models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		return true
	}
	return models.RoleAtLeast(acting.Role, models.RoleTrainer) && course.OwnerID == acting.ID
}

// CanManageUsers reports whether acting may modify or deactivate target.
// Superadmin accounts are protected from everyone but another superadmin.
func CanManageUsers(acting, target models.User) bool {
	if !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		return false
	}
	if models.IsSuperAdmin(target.Role) && !models.IsSuperAdmin(acting.Role) {
		return false
	}
	return true
}

// CanCreateRole reports whether acting may assign the requested role to an
// account. Only a superadmin may grant the superadmin role.
func CanCreateRole(acting models.User, requestedRole string) bool {
	if !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		return false
	}
	if models.IsSuperAdmin(requestedRole) {
		return models.IsSuperAdmin(acting.Role)
	}
	return true
}
