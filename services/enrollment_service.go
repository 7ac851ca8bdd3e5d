package services

import (
	"errors"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// EnrollmentService creates and lists enrollments.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll enrolls targetUserID (defaulting to the acting user) into a published
// course. The unique (user_id, course_id) index turns concurrent duplicate
// enrollments into a conflict instead of a second row.
func (s *EnrollmentService) Enroll(courseID uint, acting models.User, targetUserID *uint) (*courseModels.Enrollment, error) {
	userID := acting.ID
	if targetUserID != nil && *targetUserID != acting.ID {
		if !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
			return nil, NewAuthorizationError("Only admins can enroll other users!")
		}

		var target models.User
		if err := s.db.Where("id = ? AND is_deleted = ?", *targetUserID, false).First(&target).Error; err != nil {
			return nil, NewNotFoundError("Target user not found!")
		}
		userID = target.ID
	}

	var course courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, NewNotFoundError("Course not found!")
	}

	if course.Status != courseModels.CoursePublished {
		return nil, NewStateError("Course is not published!")
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Status:     courseModels.EnrollmentActive,
		EnrolledAt: time.Now(),
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewConflictError("User already enrolled in this course!")
		}
		return nil, err
	}

	return &enrollment, nil
}

// ListEnrollments returns every enrollment for admins and only the caller's
// own for everyone else.
func (s *EnrollmentService) ListEnrollments(acting models.User) ([]courseModels.Enrollment, error) {
	q := s.db.Order("created_at desc")
	if !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		q = q.Where("user_id = ?", acting.ID)
	}

	var enrollments []courseModels.Enrollment
	if err := q.Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Get returns one enrollment if the acting user may see it.
func (s *EnrollmentService) Get(enrollmentID uint, acting models.User) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		return nil, NewNotFoundError("Enrollment not found!")
	}

	if enrollment.UserID != acting.ID && !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		return nil, NewAuthorizationError("You cannot view this enrollment!")
	}
	return &enrollment, nil
}
