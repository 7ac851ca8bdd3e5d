package controllers

import (
	"lms/middleware"
	"lms/models"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// currentUser reads the user loaded by middleware.LoadUser.
func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("currentUser").(models.User)
	return user, ok
}

// serviceError maps a service failure to the JSON error envelope. Internal
// failures never leak their message.
func serviceError(c *fiber.Ctx, err error) error {
	status := services.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		return middleware.JsonResponse(c, status, false, "Something went wrong!", nil)
	}
	return middleware.JsonResponse(c, status, false, err.Error(), nil)
}
