package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseQuiz returns the quiz of a course. Learners never receive the
// answer key; trainer and above do.
func GetCourseQuiz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	svc := services.NewQuizService(database.Database.Db)
	quiz, err := svc.GetForCourse(uint(courseID), user)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// SubmitQuizAttempt scores a submission and stores the attempt
func SubmitQuizAttempt(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	reqData, ok := c.Locals("validatedSubmitQuiz").(*courseValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := services.NewQuizService(database.Database.Db)
	result, err := svc.SubmitAttempt(uint(quizID), reqData.Answers, user)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", result)
}

// GetQuizAttempts lists the caller's attempts for a quiz, newest first
func GetQuizAttempts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	svc := services.NewQuizService(database.Database.Db)
	attempts, err := svc.Attempts(uint(quizID), user)
	if err != nil {
		return serviceError(c, err)
	}

	var latest interface{}
	if len(attempts) > 0 {
		latest = attempts[0]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"latest":   latest,
		"total":    len(attempts),
	})
}
