package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records a lesson completion for the caller's enrollment.
// Completing the same lesson twice is a no-op; the enrollment is returned with
// its recomputed status either way.
func MarkLessonComplete(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	lessonID := c.Locals("lessonID").(int)

	svc := services.NewProgressService(database.Database.Db)
	enrollment, err := svc.MarkLessonComplete(uint(enrollmentID), uint(lessonID), user)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", enrollment)
}

// GetProgress returns the derived progress summary for an enrollment
func GetProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	svc := services.NewProgressService(database.Database.Db)
	summary, err := svc.Summary(uint(enrollmentID), user)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", summary)
}
