package adminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns platform-wide aggregate counts for the admin
// dashboard. Read-only; nothing here mutates enrollment or progress state.
func GetDashboardStats(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var totalUsers, totalCourses, publishedCourses int64
	var totalEnrollments, completedEnrollments int64
	var totalAttempts, totalCertificates int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND status = ?", false, courseModels.CoursePublished).Count(&publishedCourses)
	db.Model(&courseModels.Enrollment{}).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("status = ?", courseModels.EnrollmentCompleted).Count(&completedEnrollments)
	db.Model(&courseModels.QuizAttempt{}).Count(&totalAttempts)
	db.Model(&courseModels.Certificate{}).Count(&totalCertificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total": totalUsers,
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
		},
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"quiz_attempts": totalAttempts,
		"certificates":  totalCertificates,
	})
}
