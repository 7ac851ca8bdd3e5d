package adminController

import (
	"encoding/json"
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"
	adminValidator "lms/validators/admin"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// loadManagedCourse fetches a course and checks the acting user may manage it.
func loadManagedCourse(c *fiber.Ctx) (*courseModels.Course, error) {
	user, ok := currentUser(c)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !services.CanManageCourse(user, course) {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to manage this course!", nil)
	}

	return &course, nil
}

// CreateCourse creates a draft course owned by the acting trainer
func CreateCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateCourse").(*adminValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		OwnerID:      user.ID,
		Status:       courseModels.CourseDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates course metadata
func UpdateCourse(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedUpdateCourse").(*adminValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := make(map[string]interface{})
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.ThumbnailURL != nil {
		updates["thumbnail_url"] = *reqData.ThumbnailURL
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(course).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// PublishCourse makes a course visible to learners and open for enrollment
func PublishCourse(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	var lessonCount int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Count(&lessonCount)
	if lessonCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Add at least one lesson before publishing!", nil)
	}

	if err := database.Database.Db.Model(course).Update("status", courseModels.CoursePublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// DeleteCourse soft-deletes a course; enrollments and attempts are retained
func DeleteCourse(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	if err := database.Database.Db.Model(course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// CreateModule adds a module to a course
func CreateModule(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCreateModule").(*adminValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// CreateLesson adds a lesson to a module. LINK lessons get a reachability
// probe before they are accepted.
func CreateLesson(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, course.ID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateLesson").(*adminValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Type == courseModels.LessonLink {
		client := resty.New().SetTimeout(5 * time.Second)
		resp, err := client.R().Head(reqData.ContentURL)
		if err != nil || resp.StatusCode() >= 400 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson link is not reachable!", nil)
		}
	}

	lesson := courseModels.Lesson{
		CourseID:   course.ID,
		ModuleID:   module.ID,
		Title:      reqData.Title,
		Type:       reqData.Type,
		ContentURL: reqData.ContentURL,
		Duration:   reqData.Duration,
		OrderIndex: reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// CreateQuiz attaches the quiz to a course. A course can only ever have one;
// the unique index turns a second create into a conflict.
func CreateQuiz(c *fiber.Ctx) error {
	course, err := loadManagedCourse(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCreateQuiz").(*adminValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		CourseID:     course.ID,
		Title:        reqData.Title,
		PassingScore: reqData.PassingScore,
		Questions:    make([]courseModels.Question, len(reqData.Questions)),
	}

	for i, q := range reqData.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question options!", nil)
		}
		quiz.Questions[i] = courseModels.Question{
			Prompt:             q.Prompt,
			Options:            datatypes.JSON(optionsJSON),
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Points:             q.Points,
			OrderIndex:         i,
		}
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already has a quiz!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}
