package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam validates that the named route parameter is a positive integer.
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Pagination is the validated page/limit query pair
type Pagination struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

// CourseList validates optional pagination for the catalog listing
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(Pagination)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPagination", reqData)
		return c.Next()
	}
}

// GetCourseDetail validates the course ID route parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollRequest is the optional enroll body; admins may enroll someone else
type EnrollRequest struct {
	TargetUserID *uint `json:"target_user_id"`
}

// EnrollCourse validates the course ID and the optional target user body
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(EnrollRequest)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// MarkLessonComplete validates the enrollment and lesson route parameters
func MarkLessonComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := parseIDParam(c, "enrollment_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		lessonID, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// GetEnrollmentDetail validates the enrollment ID route parameter
func GetEnrollmentDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := parseIDParam(c, "enrollment_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}
