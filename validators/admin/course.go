package adminValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseIDParam validates that the named route parameter is a positive integer.
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// fieldErrors converts validator.ValidationErrors into the field->message map
// used by ValidationErrorResponse.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Invalid value (" + fe.Tag() + ")!"
		}
	} else {
		errors["body"] = "Invalid request body!"
	}
	return errors
}

// CreateCourseRequest is the validated course authoring payload
type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description" validate:"required,min=5"`
	Duration     int64  `json:"duration" validate:"gte=0"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

// UpdateCourseRequest carries optional course fields to change
type UpdateCourseRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3"`
	Description  *string `json:"description" validate:"omitempty,min=5"`
	Duration     *int64  `json:"duration" validate:"omitempty,gte=0"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
}

// CreateModuleRequest is the validated module payload
type CreateModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// CreateLessonRequest is the validated lesson payload
type CreateLessonRequest struct {
	Title      string `json:"title" validate:"required,min=3"`
	Type       string `json:"type" validate:"required,oneof=VIDEO PDF LINK"`
	ContentURL string `json:"content_url" validate:"required,url"`
	Duration   int    `json:"duration" validate:"gte=0"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

// QuizQuestionPayload is one question inside a quiz creation payload
type QuizQuestionPayload struct {
	Prompt             string   `json:"prompt" validate:"required"`
	Options            []string `json:"options" validate:"required,min=2"`
	CorrectAnswerIndex int      `json:"correct_answer_index" validate:"gte=0"`
	Points             int      `json:"points" validate:"gte=1"`
}

// CreateQuizRequest is the validated quiz authoring payload
type CreateQuizRequest struct {
	Title        string                `json:"title" validate:"required,min=3"`
	PassingScore int                   `json:"passing_score" validate:"gte=0,lte=100"`
	Questions    []QuizQuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

// CreateCourse validates the course authoring body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the course ID and the update body
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the course ID route parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateModule validates the course ID and the module body
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(CreateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCreateModule", reqData)
		return c.Next()
	}
}

// CreateLesson validates the course/module IDs and the lesson body
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parseIDParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedCreateLesson", reqData)
		return c.Next()
	}
}

// CreateQuiz validates the course ID and the quiz body, including that every
// correct answer index points at an existing option.
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		errors := make(map[string]string)
		for i, q := range reqData.Questions {
			if q.CorrectAnswerIndex >= len(q.Options) {
				errors["questions"] = "Correct answer index out of range for question " + strconv.Itoa(i+1) + "!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCreateQuiz", reqData)
		return c.Next()
	}
}
