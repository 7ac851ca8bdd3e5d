package adminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// UserList returns the user roster. Superadmin accounts are hidden from
// everyone but another superadmin.
func UserList(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Set default pagination
	page := 1
	limit := 10
	if reqData, ok := c.Locals("validatedUserList").(*adminValidator.UserListQuery); ok {
		if reqData.Page != nil {
			page = *reqData.Page
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if !models.IsSuperAdmin(user.Role) {
		db = db.Where("role != ?", models.RoleSuperAdmin)
	}

	// Count total records
	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched successfully!", response)
}

// UpdateUserRole assigns a new role to a user. Only a superadmin may touch a
// superadmin account or grant the superadmin role.
func UpdateUserRole(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(int)
	reqData, ok := c.Locals("validatedUpdateRole").(*adminValidator.UpdateRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if !services.CanManageUsers(user, target) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to modify this user!", nil)
	}

	if !services.CanCreateRole(user, reqData.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to grant this role!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("role", reqData.Role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", target)
}

// DeactivateUser disables an account. Superadmins can only be deactivated by
// another superadmin.
func DeactivateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(int)

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if !services.CanManageUsers(user, target) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to modify this user!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deactivated successfully!", nil)
}
