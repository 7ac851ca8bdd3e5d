package utils

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the enrollment reminder scheduler
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing enrollment reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to nudge stale enrollments
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily enrollment reminder check...")
		ProcessStaleEnrollments()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Enrollment reminder scheduler started - runs daily at 9 AM")
}

// ProcessStaleEnrollments sends reminder emails for enrollments that are still
// active two weeks after enrolling. It only reads progress state; course
// status and completion are never touched from here.
func ProcessStaleEnrollments() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -14)

	var staleEnrollments []courseModels.Enrollment
	if err := db.
		Where("status = ? AND reminder_sent = false", courseModels.EnrollmentActive).
		Where("enrolled_at < ?", cutoff).
		Find(&staleEnrollments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching stale enrollments: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d stale enrollments", len(staleEnrollments))

	for _, enrollment := range staleEnrollments {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		var course courseModels.Course
		if err := db.First(&course, enrollment.CourseID).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching course %d: %v", enrollment.CourseID, err)
			continue
		}

		SendEnrollmentReminder(user.Email, user.Name, course.Title)

		// Mark reminder as sent
		if err := db.Model(&courseModels.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error marking reminder sent for enrollment %d: %v", enrollment.ID, err)
		}
	}
}
