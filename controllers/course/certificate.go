package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IssueCertificate issues the certificate for a completed enrollment. Calling
// it again returns the same certificate.
func IssueCertificate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	svc := services.NewCertificateService(database.Database.Db)
	cert, err := svc.IssueIfEligible(uint(enrollmentID), user)
	if err != nil {
		return serviceError(c, err)
	}

	var course courseModels.Course
	if err := database.Database.Db.First(&course, cert.CourseID).Error; err == nil {
		utils.SendCertificateEmail(user.Email, user.Name, course.Title, cert.CertificateNumber)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	svc := services.NewCertificateService(database.Database.Db)
	certificates, err := svc.ListForUser(user)
	if err != nil {
		return serviceError(c, err)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.First(&course, cert.CourseID)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate is the public, unauthenticated verification lookup. An
// unknown number yields {valid: false}, never an error status.
func VerifyCertificate(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verification result.", services.VerificationResult{Valid: false})
	}

	svc := services.NewCertificateService(database.Database.Db)
	result := svc.Verify(number)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verification result.", result)
}
