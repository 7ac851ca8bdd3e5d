package services

import (
	"errors"
	"strings"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService issues at most one certificate per completed enrollment
// and resolves public verification lookups.
type CertificateService struct {
	db *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{db: db}
}

// VerificationResult is the public certificate lookup response.
type VerificationResult struct {
	Valid       bool       `json:"valid"`
	UserName    string     `json:"user_name,omitempty"`
	CourseTitle string     `json:"course_title,omitempty"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
}

// IssueIfEligible mints a certificate for a completed enrollment. Re-issuing
// returns the existing certificate unchanged. Two concurrent calls race on the
// unique enrollment_id index and the loser returns the winner's row.
func (s *CertificateService) IssueIfEligible(enrollmentID uint, acting models.User) (*courseModels.Certificate, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		return nil, NewNotFoundError("Enrollment not found!")
	}

	if enrollment.UserID != acting.ID {
		return nil, NewAuthorizationError("Only the enrolled user can request this certificate!")
	}

	if enrollment.Status != courseModels.EnrollmentCompleted {
		return nil, NewStateError("Please complete the course before requesting a certificate!")
	}

	var existing courseModels.Certificate
	if err := s.db.Where("enrollment_id = ?", enrollment.ID).First(&existing).Error; err == nil {
		return &existing, nil
	}

	cert := courseModels.Certificate{
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: newCertificateNumber(),
		IssuedAt:          time.Now(),
	}
	if err := s.db.Create(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("enrollment_id = ?", enrollment.ID).First(&cert).Error; err != nil {
				return nil, err
			}
			return &cert, nil
		}
		return nil, err
	}

	return &cert, nil
}

// Verify resolves a certificate number for third parties. No authentication is
// required and unknown numbers report invalid rather than an error.
func (s *CertificateService) Verify(certificateNumber string) VerificationResult {
	var cert courseModels.Certificate
	if err := s.db.Where("certificate_number = ?", certificateNumber).First(&cert).Error; err != nil {
		return VerificationResult{Valid: false}
	}

	var user models.User
	s.db.First(&user, cert.UserID)
	var course courseModels.Course
	s.db.First(&course, cert.CourseID)

	issued := cert.IssuedAt
	return VerificationResult{
		Valid:       true,
		UserName:    user.Name,
		CourseTitle: course.Title,
		IssuedAt:    &issued,
	}
}

// ListForUser returns the acting user's certificates, newest first.
func (s *CertificateService) ListForUser(acting models.User) ([]courseModels.Certificate, error) {
	var certificates []courseModels.Certificate
	err := s.db.Where("user_id = ?", acting.ID).
		Order("issued_at desc").
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

// newCertificateNumber builds a collision-resistant certificate number; a
// counter would collide under concurrent issuance.
func newCertificateNumber() string {
	return "LH-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
