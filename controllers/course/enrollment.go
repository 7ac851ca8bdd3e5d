package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the acting user (or, for admins, a target user) into
// a published course
func EnrollInCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var targetUserID *uint
	if reqData, ok := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest); ok {
		targetUserID = reqData.TargetUserID
	}

	svc := services.NewEnrollmentService(database.Database.Db)
	enrollment, err := svc.Enroll(uint(courseID), user, targetUserID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists enrollments: admins see all, everyone else their own
func GetEnrollments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	svc := services.NewEnrollmentService(database.Database.Db)
	enrollments, err := svc.ListEnrollments(user)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}
