package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion. The
// unique index on EnrollmentID makes concurrent issuance yield exactly one row.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"not null;uniqueIndex"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex;not null"`
	IssuedAt          time.Time `json:"issued_at"`
}
