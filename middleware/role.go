package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// LoadUser resolves the authenticated user record from the userId set by
// JWTMiddleware and stores it in the request context. Inactive and deleted
// accounts are rejected here so no handler has to re-check them.
func LoadUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.IsActive {
		return JsonResponse(c, fiber.StatusForbidden, false, "Account is deactivated!", nil)
	}

	c.Locals("currentUser", user)
	return c.Next()
}

// RequireRole returns a middleware that checks the current user's role against
// a minimum threshold in the role hierarchy.
func RequireRole(threshold string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(models.User)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if !models.RoleAtLeast(user.Role, threshold) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}
