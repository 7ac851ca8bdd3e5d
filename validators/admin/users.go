package adminValidator

import (
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// UserListQuery is the validated pagination for the user listing
type UserListQuery struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

// UpdateRoleRequest carries the role to assign to a user
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserList validates pagination for the user listing
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

// UpdateUserRole validates the target user ID and the requested role
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(UpdateRoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.IsValidRole(reqData.Role) {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": "Unknown role!"})
		}

		c.Locals("targetUserID", userID)
		c.Locals("validatedUpdateRole", reqData)
		return c.Next()
	}
}

// UserIDParam validates the target user ID route parameter
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", userID)
		return c.Next()
	}
}
