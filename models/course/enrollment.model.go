package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. Finer display buckets (not-started, in-progress) are
// derived from the completion percentage and are never stored.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course. The unique index makes
// double enrollment a constraint violation rather than a race.
type Enrollment struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID     uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status       string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED
	EnrolledAt   time.Time  `json:"enrolled_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	ReminderSent bool       `json:"-" gorm:"default:false"`
}

// LessonProgress is a per-lesson completion fact for an enrollment. The unique
// index on (enrollment_id, lesson_id) guarantees at most one record per lesson.
type LessonProgress struct {
	gorm.Model
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson"`
	LessonID     uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson"`
	Completed    bool      `json:"completed" gorm:"default:true"`
	CompletedAt  time.Time `json:"completed_at"`
}
