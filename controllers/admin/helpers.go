package adminController

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// currentUser reads the user loaded by middleware.LoadUser.
func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("currentUser").(models.User)
	return user, ok
}
