// internals/features/lms/assignments/controller/assignment_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	assignmentDTO "lmsku_backend/internals/features/lms/assignments/dto"
	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
	assignmentService "lmsku_backend/internals/features/lms/assignments/service"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
	notificationService "lmsku_backend/internals/features/lms/notifications/service"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AssignmentController struct {
	DB            *gorm.DB
	Cfg           *configs.Config
	Notifications *notificationService.NotificationService
}

func NewAssignmentController(db *gorm.DB, cfg *configs.Config) *AssignmentController {
	return &AssignmentController{
		DB:            db,
		Cfg:           cfg,
		Notifications: notificationService.NewNotificationService(db),
	}
}

// parseDeadline menerima ISO 8601 penuh atau tanggal saja.
func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// ========================== CREATE ==========================
// POST /api/assignments/create (teacher pemilik course)
// Setelah tersimpan, fan-out notifikasi ke semua student terdaftar.
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid deadline format. Use ISO format (YYYY-MM-DD)")
	}

	assignment := assignmentModel.AssignmentModel{
		CourseID:    course.ID,
		CourseName:  req.CourseName,
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
	}
	if fh, err := c.FormFile("attachmentFile"); err == nil && fh != nil {
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "assignment_files")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attachment")
		}
		assignment.AttachmentFile = &path
	}

	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		log.Println("[ERROR] gagal membuat assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	ctrl.Notifications.NotifyEnrolledStudents(
		course.ID, &teacherID,
		"New Assignment",
		fmt.Sprintf("New assignment '%s' has been posted for %s", assignment.Title, assignment.CourseName),
		notificationModel.TypeAssignment,
		map[string]interface{}{"assignment_id": assignment.ID.String()},
	)

	return helper.JsonCreated(c, "Assignment created successfully", assignment)
}

// ========================== LIST (TEACHER) ==========================
// GET /api/assignments/teacher
func (ctrl *AssignmentController) GetTeacherAssignments(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var assignments []assignmentModel.AssignmentModel
	if err := ctrl.DB.Where("teacher_id = ?", teacherID).
		Order("deadline ASC").Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	resp := make([]assignmentDTO.TeacherAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		var submissionCount, totalStudents int64
		if err := ctrl.DB.Model(&assignmentModel.SubmissionModel{}).
			Where("assignment_id = ?", a.ID).Count(&submissionCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
		}
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ?", a.CourseID).Count(&totalStudents).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
		}
		resp = append(resp, assignmentDTO.TeacherAssignmentResponse{
			AssignmentModel: a,
			SubmissionCount: submissionCount,
			TotalStudents:   totalStudents,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{"assignments": resp})
}

// ========================== LIST (STUDENT) ==========================
// GET /api/assignments/student — tugas semua course yang diikuti,
// plus status pengumpulan milik student ybs.
func (ctrl *AssignmentController) GetStudentAssignments(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var courseIDs []uuid.UUID
	if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
		Where("student_id = ?", studentID).
		Pluck("course_id", &courseIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	if len(courseIDs) == 0 {
		return helper.JsonOK(c, "OK", fiber.Map{"assignments": []assignmentDTO.StudentAssignmentResponse{}})
	}

	var assignments []assignmentModel.AssignmentModel
	if err := ctrl.DB.Where("course_id IN ?", courseIDs).
		Order("deadline ASC").Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	resp := make([]assignmentDTO.StudentAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		item := assignmentDTO.StudentAssignmentResponse{AssignmentModel: a}
		var submission assignmentModel.SubmissionModel
		err := ctrl.DB.Where("assignment_id = ? AND student_id = ?", a.ID, studentID).
			First(&submission).Error
		if err == nil {
			item.Submitted = true
			item.Submission = &submission
		}
		resp = append(resp, item)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"assignments": resp})
}

// ========================== UPDATE ==========================
// PUT /api/assignments/:assignment_id (teacher pemilik)
func (ctrl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	assignment, res := ctrl.ownedAssignment(c)
	if assignment == nil {
		return res
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid deadline format. Use ISO format (YYYY-MM-DD)")
		}
		updates["deadline"] = deadline
	}
	if fh, err := c.FormFile("attachmentFile"); err == nil && fh != nil {
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "assignment_files")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attachment")
		}
		updates["attachment_file"] = path
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(assignment).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
		}
	}

	return helper.JsonUpdated(c, "Assignment updated successfully", assignment)
}

// ========================== DELETE ==========================
// DELETE /api/assignments/:assignment_id — submission ikut terhapus.
func (ctrl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	assignment, res := ctrl.ownedAssignment(c)
	if assignment == nil {
		return res
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", assignment.ID).
			Delete(&assignmentModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(assignment).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return helper.JsonDeleted(c, "Assignment deleted successfully", nil)
}

// ========================== SUBMIT ==========================
// POST /api/assignments/:assignment_id/submit (student terdaftar)
// Status Late ditentukan server dari jam kirim vs deadline; kiriman
// kedua ditolak. Teacher dapat notifikasi.
func (ctrl *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	assignmentID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctrl.DB.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	var enrolled int64
	if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ?", assignment.CourseID, studentID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var existing int64
	if err := ctrl.DB.Model(&assignmentModel.SubmissionModel{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "You have already submitted this assignment")
	}

	now := time.Now().UTC()
	submission := assignmentModel.SubmissionModel{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Status:       assignmentService.SubmissionStatus(now, assignment.Deadline),
	}
	if text := c.FormValue("submission_text"); text != "" {
		submission.SubmissionText = &text
	}
	if fh, err := c.FormFile("submission_file"); err == nil && fh != nil {
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "assignment_submissions")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save submission file")
		}
		submission.SubmissionFile = &path
	}

	if err := ctrl.DB.Create(&submission).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted this assignment")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit assignment")
	}

	var student userModel.UserModel
	username := "A student"
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err == nil {
		username = student.UserName
	}
	cid := assignment.CourseID
	ctrl.Notifications.NotifyUser(
		assignment.TeacherID, &studentID, &cid,
		"Assignment Submission",
		fmt.Sprintf("Student %s has submitted assignment '%s'", username, assignment.Title),
		notificationModel.TypeSubmission,
		map[string]interface{}{"assignment_id": assignment.ID.String(), "status": submission.Status},
	)

	return helper.JsonCreated(c, "Assignment submitted successfully", submission)
}

// ========================== GRADE ==========================
// POST /api/assignments/:assignment_id/grade/:student_id (teacher pemilik)
// Idempotent: menilai ulang menimpa nilai lama, status tetap Graded.
func (ctrl *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	assignment, res := ctrl.ownedAssignment(c)
	if assignment == nil {
		return res
	}

	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req assignmentDTO.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var submission assignmentModel.SubmissionModel
	if err := ctrl.DB.Where("assignment_id = ? AND student_id = ?", assignment.ID, studentID).
		First(&submission).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"score":     *req.Score,
		"status":    assignmentModel.SubmissionGraded,
		"graded_at": now,
	}
	if req.Feedback != nil {
		updates["feedback"] = *req.Feedback
	}
	if err := ctrl.DB.Model(&submission).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}

	teacherID := assignment.TeacherID
	cid := assignment.CourseID
	ctrl.Notifications.NotifyUser(
		studentID, &teacherID, &cid,
		"Assignment Graded",
		fmt.Sprintf("Your submission for '%s' has been graded", assignment.Title),
		notificationModel.TypeGrade,
		map[string]interface{}{"assignment_id": assignment.ID.String(), "score": *req.Score},
	)

	return helper.JsonOK(c, "Assignment graded successfully", nil)
}

// ownedAssignment memuat assignment dari path param dan memastikan
// miliknya teacher yang login. assignment == nil berarti response error
// sudah ditulis; handler harus langsung return res, bukan cek res != nil
// (JsonError mengembalikan nil kalau penulisan response sukses).
func (ctrl *AssignmentController) ownedAssignment(c *fiber.Ctx) (*assignmentModel.AssignmentModel, error) {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	assignmentID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", assignmentID, teacherID).
		First(&assignment).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Assignment not found or you don't have permission")
	}
	return &assignment, nil
}
