package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuizRequest carries the ordered answer indices for a submission
type SubmitQuizRequest struct {
	Answers []int `json:"answers"`
}

// GetCourseQuiz validates the course ID route parameter
func GetCourseQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz ID and the answers body. Per-answer range
// checks happen in the service against the actual question set.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answers are required!", nil)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedSubmitQuiz", reqData)
		return c.Next()
	}
}

// QuizAttempts validates the quiz ID route parameter
func QuizAttempts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}
