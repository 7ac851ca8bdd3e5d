package services

import (
	"strings"
	"testing"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func completeEnrollment(t *testing.T, db *gorm.DB, enrollmentID uint) {
	t.Helper()

	now := time.Now()
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("id = ?", enrollmentID).
		Updates(map[string]interface{}{
			"status":       courseModels.EnrollmentCompleted,
			"completed_at": now,
		}).Error)
}

func TestIssueRequiresCompletedEnrollment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)

	_, err := svc.IssueIfEligible(enrollment.ID, learner)
	requireKind(t, err, KindState)

	var count int64
	db.Model(&courseModels.Certificate{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestIssueAndReissueSameCertificate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)
	completeEnrollment(t, db, enrollment.ID)

	cert, err := svc.IssueIfEligible(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, learner.ID, cert.UserID)
	assert.Equal(t, course.ID, cert.CourseID)
	assert.True(t, strings.HasPrefix(cert.CertificateNumber, "LH-"))
	assert.False(t, cert.IssuedAt.IsZero())

	again, err := svc.IssueIfEligible(enrollment.ID, learner)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, again.ID)
	assert.Equal(t, cert.CertificateNumber, again.CertificateNumber)

	var count int64
	db.Model(&courseModels.Certificate{}).
		Where("enrollment_id = ?", enrollment.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIssueOnlyByEnrolledUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService(db)

	learner := createUser(t, db, models.RoleLearner)
	admin := createUser(t, db, models.RoleAdmin)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)
	completeEnrollment(t, db, enrollment.ID)

	_, err := svc.IssueIfEligible(enrollment.ID, admin)
	requireKind(t, err, KindAuthorization)

	_, err = svc.IssueIfEligible(9999, learner)
	requireKind(t, err, KindNotFound)
}

func TestVerifyCertificate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService(db)

	learner := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)
	course, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	enrollment := createEnrollment(t, db, learner.ID, course.ID)
	completeEnrollment(t, db, enrollment.ID)

	cert, err := svc.IssueIfEligible(enrollment.ID, learner)
	require.NoError(t, err)

	result := svc.Verify(cert.CertificateNumber)
	assert.True(t, result.Valid)
	assert.Equal(t, learner.Name, result.UserName)
	assert.Equal(t, course.Title, result.CourseTitle)
	require.NotNil(t, result.IssuedAt)

	// Unknown numbers report invalid without leaking anything.
	miss := svc.Verify("LH-DOESNOTEXIST")
	assert.False(t, miss.Valid)
	assert.Empty(t, miss.UserName)
	assert.Empty(t, miss.CourseTitle)
	assert.Nil(t, miss.IssuedAt)
}

func TestListForUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService(db)

	learner := createUser(t, db, models.RoleLearner)
	other := createUser(t, db, models.RoleLearner)
	trainer := createUser(t, db, models.RoleTrainer)

	courseA, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)
	courseB, _ := createCourse(t, db, trainer.ID, courseModels.CoursePublished, 1)

	for _, c := range []courseModels.Course{courseA, courseB} {
		enrollment := createEnrollment(t, db, learner.ID, c.ID)
		completeEnrollment(t, db, enrollment.ID)
		_, err := svc.IssueIfEligible(enrollment.ID, learner)
		require.NoError(t, err)
	}

	mine, err := svc.ListForUser(learner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListForUser(other)
	require.NoError(t, err)
	assert.Len(t, none, 0)
}
