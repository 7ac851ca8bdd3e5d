package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware, middleware.LoadUser)

	// Catalog
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", validators.EnrollCourse(), controllers.EnrollInCourse)

	// Quiz definition (answer key redacted for learners)
	courseGroup.Get("/:id/quiz", validators.GetCourseQuiz(), controllers.GetCourseQuiz)

	// Progress tracking and certificate issuance per enrollment
	enrollmentGroup := app.Group("/enrollment", middleware.JWTMiddleware, middleware.LoadUser)
	enrollmentGroup.Post("/:enrollment_id/lesson/:lesson_id/complete", validators.MarkLessonComplete(), controllers.MarkLessonComplete)
	enrollmentGroup.Get("/:enrollment_id/progress", validators.GetEnrollmentDetail(), controllers.GetProgress)
	enrollmentGroup.Post("/:enrollment_id/certificate", validators.GetEnrollmentDetail(), controllers.IssueCertificate)

	// Quiz attempts
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware, middleware.LoadUser)
	quizGroup.Post("/:quiz_id/submit", validators.SubmitQuiz(), controllers.SubmitQuizAttempt)
	quizGroup.Get("/:quiz_id/attempts", validators.QuizAttempts(), controllers.GetQuizAttempts)

	// User enrollments and certificates
	userGroup := app.Group("/user", middleware.JWTMiddleware, middleware.LoadUser)
	userGroup.Get("/enrollments", controllers.GetEnrollments)
	userGroup.Get("/certificates", controllers.GetUserCertificates)

	// Public certificate verification - no identity required
	app.Get("/certificate/verify/:number", controllers.VerifyCertificate)
}
