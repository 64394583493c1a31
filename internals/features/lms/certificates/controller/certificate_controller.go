// internals/features/lms/certificates/controller/certificate_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	certificateModel "lmsku_backend/internals/features/lms/certificates/model"
	certificateService "lmsku_backend/internals/features/lms/certificates/service"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
	notificationService "lmsku_backend/internals/features/lms/notifications/service"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

type CertificateController struct {
	DB            *gorm.DB
	Cfg           *configs.Config
	Notifications *notificationService.NotificationService
}

func NewCertificateController(db *gorm.DB, cfg *configs.Config) *CertificateController {
	return &CertificateController{
		DB:            db,
		Cfg:           cfg,
		Notifications: notificationService.NewNotificationService(db),
	}
}

// ========================== CREATE TEMPLATE ==========================
// POST /api/certificates/create (teacher pemilik course)
// Maksimal satu template per course; course ikut ditandai
// certificateOffered setelah template dibuat.
func (ctrl *CertificateController) CreateTemplate(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required")
	}
	courseID, err := uuid.Parse(c.FormValue("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	var existing int64
	if err := ctrl.DB.Model(&certificateModel.CertificateModel{}).
		Where("course_id = ?", courseID).Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Certificate template already exists for this course")
	}

	template := certificateModel.CertificateModel{
		CourseID: courseID,
		Title:    title,
	}
	if desc := c.FormValue("description"); desc != "" {
		template.Description = &desc
	}
	if fh, err := c.FormFile("template"); err == nil && fh != nil {
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "certificate_templates")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save template file")
		}
		template.Template = &path
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"certificate_offered": true,
			"certificate_title":   template.Title,
		}
		if template.Description != nil {
			updates["certificate_description"] = *template.Description
		}
		return tx.Model(&course).Updates(updates).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Certificate template already exists for this course")
		}
		log.Println("[ERROR] gagal membuat template sertifikat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create certificate template")
	}

	return helper.JsonCreated(c, "Certificate template created successfully", template)
}

// ========================== ISSUE ==========================
// POST /api/certificates/issue/:course_id/:student_id (teacher pemilik)
// Satu sertifikat per (template, student); file PNG dirender saat issue.
func (ctrl *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	var template certificateModel.CertificateModel
	if err := ctrl.DB.Where("course_id = ?", courseID).First(&template).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No certificate template found for this course")
	}

	var enrolled int64
	if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not enrolled in this course")
	}

	var alreadyIssued int64
	if err := ctrl.DB.Model(&certificateModel.StudentCertificateModel{}).
		Where("certificate_id = ? AND student_id = ?", template.ID, studentID).
		Count(&alreadyIssued).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if alreadyIssued > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Certificate already issued to this student")
	}

	var student userModel.UserModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	credentialID, err := certificateService.GenerateCredentialID(course.CourseCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate credential")
	}

	now := time.Now().UTC()
	certURL, err := certificateService.RenderCertificate(certificateService.RenderInput{
		StudentName:      student.UserName,
		CourseName:       course.CourseName,
		CertificateTitle: template.Title,
		InstructorName:   course.InstructorName,
		IssueDate:        now,
		CredentialID:     credentialID,
		TemplatePath:     template.Template,
	}, ctrl.Cfg.UploadFolder)
	if err != nil {
		log.Println("[ERROR] gagal render sertifikat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate certificate")
	}

	issued := certificateModel.StudentCertificateModel{
		CertificateID:  template.ID,
		StudentID:      studentID,
		CourseID:       courseID,
		CompletionDate: now,
		CredentialID:   credentialID,
		CertificateURL: &certURL,
		Status:         certificateModel.CertificateAvailable,
	}
	if err := ctrl.DB.Create(&issued).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Certificate already issued to this student")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}

	cid := courseID
	ctrl.Notifications.NotifyUser(
		studentID, &teacherID, &cid,
		"Certificate Issued",
		fmt.Sprintf("You have been issued a certificate for completing '%s'", course.CourseName),
		notificationModel.TypeCertificate,
		map[string]interface{}{"credential_id": credentialID},
	)

	return helper.JsonCreated(c, "Certificate issued successfully", issued)
}

// ========================== LIST (STUDENT) ==========================
// GET /api/certificates/student
func (ctrl *CertificateController) GetStudentCertificates(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var issued []certificateModel.StudentCertificateModel
	if err := ctrl.DB.Where("student_id = ?", studentID).
		Order("issue_date DESC").Find(&issued).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}

	type studentCertResponse struct {
		certificateModel.StudentCertificateModel
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Course      struct {
			Name       string `json:"name"`
			Instructor string `json:"instructor"`
		} `json:"course"`
	}

	resp := make([]studentCertResponse, 0, len(issued))
	for _, cert := range issued {
		var course courseModel.CourseModel
		var template certificateModel.CertificateModel
		if ctrl.DB.First(&course, "id = ?", cert.CourseID).Error != nil {
			continue
		}
		if ctrl.DB.First(&template, "id = ?", cert.CertificateID).Error != nil {
			continue
		}
		item := studentCertResponse{
			StudentCertificateModel: cert,
			Title:                   template.Title,
			Description:             template.Description,
		}
		item.Course.Name = course.CourseName
		item.Course.Instructor = course.InstructorName
		resp = append(resp, item)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"certificates": resp})
}

// ========================== LIST (TEACHER, PER COURSE) ==========================
// GET /api/certificates/course/:course_id
func (ctrl *CertificateController) GetCourseCertificates(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	var template certificateModel.CertificateModel
	if err := ctrl.DB.Where("course_id = ?", courseID).First(&template).Error; err != nil {
		return helper.JsonOK(c, "OK", fiber.Map{
			"certificate_template": nil,
			"issued_certificates":  []interface{}{},
		})
	}

	var issued []certificateModel.StudentCertificateModel
	if err := ctrl.DB.Where("course_id = ?", courseID).
		Order("issue_date DESC").Find(&issued).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}

	type issuedResponse struct {
		certificateModel.StudentCertificateModel
		StudentName string `json:"student_name"`
	}
	resp := make([]issuedResponse, 0, len(issued))
	for _, cert := range issued {
		item := issuedResponse{StudentCertificateModel: cert}
		var student userModel.UserModel
		if err := ctrl.DB.First(&student, "id = ?", cert.StudentID).Error; err == nil {
			item.StudentName = student.UserName
		}
		resp = append(resp, item)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"certificate_template": template,
		"issued_certificates":  resp,
	})
}
