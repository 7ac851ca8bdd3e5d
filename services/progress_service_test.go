package services

import (
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkLessonCompleteProgression(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, lessons := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 3, 2)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	// Four of five lessons done: 80 percent, still active.
	for _, lesson := range lessons[:4] {
		_, err := svc.MarkLessonComplete(enrollment.ID, lesson.ID, learner)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.TotalLessons)
	assert.Equal(t, int64(4), summary.CompletedLessons)
	assert.Equal(t, 80, summary.Percent)
	assert.Equal(t, courseModels.EnrollmentActive, summary.Enrollment.Status)
	assert.Nil(t, summary.Enrollment.CompletedAt)

	// Final lesson flips the enrollment to completed.
	updated, err := svc.MarkLessonComplete(enrollment.ID, lessons[4].ID, learner)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	summary, err = svc.Summary(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.Percent)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, lessons := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 3)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	_, err := svc.MarkLessonComplete(enrollment.ID, lessons[0].ID, learner)
	require.NoError(t, err)
	_, err = svc.MarkLessonComplete(enrollment.ID, lessons[0].ID, learner)
	require.NoError(t, err)

	var count int64
	db.Model(&courseModels.LessonProgress{}).
		Where("enrollment_id = ?", enrollment.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	summary, err := svc.Summary(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.CompletedLessons)
	assert.Equal(t, 33, summary.Percent)
}

func TestMarkLessonOnlyByEnrolledUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	admin := createUser(t, db, models.RoleAdmin)
	trainer := createUser(t, db, models.RoleTrainer)
	course, lessons := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	// Progress records belong to the learner; not even admins write them.
	_, err := svc.MarkLessonComplete(enrollment.ID, lessons[0].ID, admin)
	requireKind(t, err, KindAuthorization)

	var count int64
	db.Model(&courseModels.LessonProgress{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMarkLessonFromAnotherCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	_, otherLessons := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	_, err := svc.MarkLessonComplete(enrollment.ID, otherLessons[0].ID, learner)
	requireKind(t, err, KindNotFound)
}

func TestCompletionIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, lessons := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 2)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	for _, lesson := range lessons {
		_, err := svc.MarkLessonComplete(enrollment.ID, lesson.ID, learner)
		require.NoError(t, err)
	}

	var completed courseModels.Enrollment
	require.NoError(t, db.First(&completed, enrollment.ID).Error)
	require.Equal(t, courseModels.EnrollmentCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	firstCompletedAt := *completed.CompletedAt

	// Re-marking a lesson after completion must not touch the timestamp.
	_, err := svc.MarkLessonComplete(enrollment.ID, lessons[0].ID, learner)
	require.NoError(t, err)

	require.NoError(t, db.First(&completed, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollmentCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, firstCompletedAt.Equal(*completed.CompletedAt))

	// Adding a lesson afterwards lowers the derived percentage but never
	// reverts the stored status.
	newLesson := courseModels.Lesson{
		CourseID: course.ID,
		ModuleID: lessons[0].ModuleID,
		Title:    "Bonus Lesson",
		Type:     courseModels.LessonVideo,
	}
	require.NoError(t, db.Create(&newLesson).Error)

	require.NoError(t, svc.EvaluateCompletion(&completed))
	assert.Equal(t, courseModels.EnrollmentCompleted, completed.Status)

	summary, err := svc.Summary(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalLessons)
	assert.Equal(t, int64(2), summary.CompletedLessons)
	assert.Equal(t, 67, summary.Percent)
	assert.Equal(t, courseModels.EnrollmentCompleted, summary.Enrollment.Status)
}

func TestSummaryWithNoLessons(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	summary, err := svc.Summary(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalLessons)
	assert.Equal(t, 0, summary.Percent)

	// An empty course never auto-completes.
	require.NoError(t, svc.EvaluateCompletion(&enrollment))
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
}

func TestSummaryAccess(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(db)

	learner := createUser(t, db, models.RoleLearner)
	other := createUser(t, db, models.RoleLearner)
	admin := createUser(t, db, models.RoleAdmin)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	_, err := svc.Summary(enrollment.ID, other)
	requireKind(t, err, KindAuthorization)

	_, err = svc.Summary(enrollment.ID, admin)
	require.NoError(t, err)

	_, err = svc.Summary(9999, learner)
	requireKind(t, err, KindNotFound)
}
