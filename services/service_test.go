package services

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userSeq uint64

// setupTestDB opens an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonProgress{},
		&courseModels.Quiz{},
		&courseModels.Question{},
		&courseModels.QuizAttempt{},
		&courseModels.Certificate{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	n := atomic.AddUint64(&userSeq, 1)
	user := models.User{
		Name:     fmt.Sprintf("Test User %d", n),
		Email:    fmt.Sprintf("user%d@example.com", n),
		Role:     role,
		Password: "hashed-password",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createCourse creates a course with one module per entry in lessonsPerModule,
// each module holding that many lessons. Returns the course and all lessons in
// module order.
func createCourse(t *testing.T, db *gorm.DB, ownerID uint, status string, lessonsPerModule ...int) (courseModels.Course, []courseModels.Lesson) {
	t.Helper()

	course := courseModels.Course{
		Title:       "Intro to Backend Development",
		Description: "From zero to a running service.",
		OwnerID:     ownerID,
		Status:      status,
	}
	require.NoError(t, db.Create(&course).Error)

	var lessons []courseModels.Lesson
	for m, count := range lessonsPerModule {
		module := courseModels.Module{
			CourseID:   course.ID,
			Title:      fmt.Sprintf("Module %d", m+1),
			OrderIndex: m,
		}
		require.NoError(t, db.Create(&module).Error)

		for l := 0; l < count; l++ {
			lesson := courseModels.Lesson{
				CourseID:   course.ID,
				ModuleID:   module.ID,
				Title:      fmt.Sprintf("Lesson %d.%d", m+1, l+1),
				Type:       courseModels.LessonVideo,
				ContentURL: "https://cdn.example.com/video.mp4",
				OrderIndex: l,
			}
			require.NoError(t, db.Create(&lesson).Error)
			lessons = append(lessons, lesson)
		}
	}
	return course, lessons
}

func createEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) courseModels.Enrollment {
	t.Helper()

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

// createQuiz creates a quiz with questionCount four-option questions worth
// pointsEach, where the correct answer for every question is option 1.
func createQuiz(t *testing.T, db *gorm.DB, courseID uint, passingScore, questionCount, pointsEach int) courseModels.Quiz {
	t.Helper()

	quiz := courseModels.Quiz{
		CourseID:     courseID,
		Title:        "Final Assessment",
		PassingScore: passingScore,
	}
	require.NoError(t, db.Create(&quiz).Error)

	for i := 0; i < questionCount; i++ {
		options, err := json.Marshal([]string{"Option A", "Option B", "Option C", "Option D"})
		require.NoError(t, err)

		question := courseModels.Question{
			QuizID:             quiz.ID,
			Prompt:             fmt.Sprintf("Question %d?", i+1),
			Options:            datatypes.JSON(options),
			CorrectAnswerIndex: 1,
			Points:             pointsEach,
			OrderIndex:         i,
		}
		require.NoError(t, db.Create(&question).Error)
	}
	return quiz
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()

	require.Error(t, err)
	var se *Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, kind, se.Kind)
}
