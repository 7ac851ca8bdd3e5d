package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up course authoring and user administration routes
func SetupAdminRoutes(app *fiber.App) {
	// Course authoring: trainers manage their own courses, admins any
	trainerGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.LoadUser, middleware.RequireRole(models.RoleTrainer))

	trainerGroup.Post("/course", adminValidator.CreateCourse(), adminController.CreateCourse)
	trainerGroup.Put("/course/:id", adminValidator.UpdateCourse(), adminController.UpdateCourse)
	trainerGroup.Post("/course/:id/publish", adminValidator.CourseIDParam(), adminController.PublishCourse)
	trainerGroup.Delete("/course/:id", adminValidator.CourseIDParam(), adminController.DeleteCourse)
	trainerGroup.Post("/course/:id/module", adminValidator.CreateModule(), adminController.CreateModule)
	trainerGroup.Post("/course/:id/module/:module_id/lesson", adminValidator.CreateLesson(), adminController.CreateLesson)
	trainerGroup.Post("/course/:id/quiz", adminValidator.CreateQuiz(), adminController.CreateQuiz)

	// User administration: admin and above
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.LoadUser, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", adminValidator.UserList(), adminController.UserList)
	adminGroup.Put("/user/:id/role", adminValidator.UpdateUserRole(), adminController.UpdateUserRole)
	adminGroup.Post("/user/:id/deactivate", adminValidator.UserIDParam(), adminController.DeactivateUser)
	adminGroup.Get("/dashboard", adminController.GetDashboardStats)
}
