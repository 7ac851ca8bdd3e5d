package services

import (
	"math"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressService records lesson completions and evaluates the
// ACTIVE -> COMPLETED transition.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ProgressSummary is the derived view of an enrollment's progress. The
// percentage is computed from the current course definition, never stored.
type ProgressSummary struct {
	Enrollment       courseModels.Enrollment `json:"enrollment"`
	CompletedLessons int64                   `json:"completed_lessons"`
	TotalLessons     int64                   `json:"total_lessons"`
	Percent          int                     `json:"percent"`
}

// MarkLessonComplete records a completion fact for one lesson of the caller's
// enrollment. Re-marking a completed lesson is a no-op, not an error. The
// insert is an atomic add-if-absent, so concurrent calls for different lessons
// never lose an update.
func (s *ProgressService) MarkLessonComplete(enrollmentID, lessonID uint, acting models.User) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		return nil, NewNotFoundError("Enrollment not found!")
	}

	if enrollment.UserID != acting.ID {
		return nil, NewAuthorizationError("Only the enrolled user can record progress!")
	}

	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, enrollment.CourseID, false).First(&lesson).Error; err != nil {
		return nil, NewNotFoundError("Lesson not found in this course!")
	}

	progress := courseModels.LessonProgress{
		EnrollmentID: enrollment.ID,
		LessonID:     lesson.ID,
		Completed:    true,
		CompletedAt:  time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	if err := s.EvaluateCompletion(&enrollment); err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// EvaluateCompletion transitions an enrollment to COMPLETED once every lesson
// of its course has a completion record. The transition is one-way and happens
// at most once: the guarded update only fires while the row is still ACTIVE,
// and adding lessons to the course later never flips it back.
func (s *ProgressService) EvaluateCompletion(enrollment *courseModels.Enrollment) error {
	if enrollment.Status == courseModels.EnrollmentCompleted {
		return nil
	}

	total, completed, err := s.progressCounts(enrollment)
	if err != nil {
		return err
	}

	if total > 0 && completed >= total {
		now := time.Now()
		res := s.db.Model(&courseModels.Enrollment{}).
			Where("id = ? AND status = ?", enrollment.ID, courseModels.EnrollmentActive).
			Updates(map[string]interface{}{"status": courseModels.EnrollmentCompleted, "completed_at": now})
		if res.Error != nil {
			return res.Error
		}
	}

	// Reload so callers observe the stored state, including a transition won
	// by a concurrent evaluation.
	return s.db.First(enrollment, enrollment.ID).Error
}

// Summary computes the derived completion percentage for an enrollment. The
// owner and admins may view it.
func (s *ProgressService) Summary(enrollmentID uint, acting models.User) (*ProgressSummary, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		return nil, NewNotFoundError("Enrollment not found!")
	}

	if enrollment.UserID != acting.ID && !models.RoleAtLeast(acting.Role, models.RoleAdmin) {
		return nil, NewAuthorizationError("You cannot view this enrollment!")
	}

	total, completed, err := s.progressCounts(&enrollment)
	if err != nil {
		return nil, err
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) * 100 / float64(total)))
	}

	return &ProgressSummary{
		Enrollment:       enrollment,
		CompletedLessons: completed,
		TotalLessons:     total,
		Percent:          percent,
	}, nil
}

func (s *ProgressService) progressCounts(enrollment *courseModels.Enrollment) (total, completed int64, err error) {
	if err = s.db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).
		Count(&total).Error; err != nil {
		return
	}

	err = s.db.Model(&courseModels.LessonProgress{}).
		Where("enrollment_id = ? AND completed = ?", enrollment.ID, true).
		Count(&completed).Error
	return
}
