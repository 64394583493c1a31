// internals/features/lms/materials/controller/material_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	materialModel "lmsku_backend/internals/features/lms/materials/model"
	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
	notificationService "lmsku_backend/internals/features/lms/notifications/service"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type MaterialController struct {
	DB            *gorm.DB
	Cfg           *configs.Config
	Notifications *notificationService.NotificationService
}

func NewMaterialController(db *gorm.DB, cfg *configs.Config) *MaterialController {
	return &MaterialController{
		DB:            db,
		Cfg:           cfg,
		Notifications: notificationService.NewNotificationService(db),
	}
}

type uploadMaterialRequest struct {
	Title       string  `form:"title" validate:"required,max=150"`
	Type        string  `form:"type" validate:"required"`
	CourseID    string  `form:"course_id" validate:"required,uuid"`
	ModuleID    *string `form:"module_id" validate:"omitempty,uuid"`
	Description *string `form:"description"`
	URL         *string `form:"url"`
}

// ========================== UPLOAD ==========================
// POST /api/materials/upload (teacher pemilik course)
// Aturan per tipe: link wajib URL; document/video wajib file.
// Fan-out notifikasi ke student terdaftar setelah tersimpan.
func (ctrl *MaterialController) UploadMaterial(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req uploadMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	switch req.Type {
	case materialModel.MaterialDocument, materialModel.MaterialVideo, materialModel.MaterialLink:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material type. Must be document, video, or link")
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	material := materialModel.MaterialModel{
		CourseID:    courseID,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		UploadedBy:  teacherID,
	}

	if req.ModuleID != nil && *req.ModuleID != "" {
		moduleID, _ := uuid.Parse(*req.ModuleID)
		var module courseModel.CourseModuleModel
		if err := ctrl.DB.Where("id = ? AND course_id = ?", moduleID, courseID).
			First(&module).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found or doesn't belong to this course")
		}
		material.ModuleID = &moduleID
	}

	fh, fhErr := c.FormFile("file")
	switch req.Type {
	case materialModel.MaterialLink:
		if req.URL == nil || *req.URL == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "URL is required for link type materials")
		}
		material.URL = req.URL
	default: // document / video
		if fhErr != nil || fh == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File is required for document or video type materials")
		}
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "course_materials")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save material file")
		}
		material.FilePath = &path
		size := helper.HumanFileSize(fh.Size)
		material.Size = &size
		if format := helper.FileExtUpper(fh.Filename); format != "" {
			material.Format = &format
		}
	}

	if err := ctrl.DB.Create(&material).Error; err != nil {
		log.Println("[ERROR] gagal menyimpan material:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload material")
	}

	ctrl.Notifications.NotifyEnrolledStudents(
		courseID, &teacherID,
		"New Course Material",
		fmt.Sprintf("New %s material '%s' has been added to %s", material.Type, material.Title, course.CourseName),
		notificationModel.TypeMaterial,
		map[string]interface{}{"material_id": material.ID.String()},
	)

	return helper.JsonCreated(c, "Material uploaded successfully", material)
}

// ========================== LIST PER COURSE ==========================
// GET /api/materials/course/:course_id?module_id= — student harus terdaftar.
func (ctrl *MaterialController) GetCourseMaterials(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if ok, res := ctrl.requireEnrollmentForStudent(c, courseID); !ok {
		return res
	}

	query := ctrl.DB.Where("course_id = ?", courseID)
	if raw := c.Query("module_id"); raw != "" {
		moduleID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
		}
		query = query.Where("module_id = ?", moduleID)
	}

	var materials []materialModel.MaterialModel
	if err := query.Order("created_at DESC").Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch materials")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"materials": materials})
}

// ========================== GET DETAIL ==========================
// GET /api/materials/:material_id — akses student menaikkan access_count.
func (ctrl *MaterialController) GetMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("material_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var material materialModel.MaterialModel
	if err := ctrl.DB.First(&material, "id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	if authMiddleware.Role(c) == constants.RoleStudent {
		if ok, res := ctrl.requireEnrollmentForStudent(c, material.CourseID); !ok {
			return res
		}
		if err := ctrl.DB.Model(&material).
			UpdateColumn("access_count", gorm.Expr("access_count + 1")).Error; err != nil {
			log.Println("[WARN] gagal increment access_count:", err)
		}
		material.AccessCount++
	}

	return helper.JsonOK(c, "OK", fiber.Map{"material": material})
}

// ========================== DELETE ==========================
// DELETE /api/materials/:material_id (teacher pemilik course)
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	materialID, err := uuid.Parse(c.Params("material_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var material materialModel.MaterialModel
	if err := ctrl.DB.First(&material, "id = ?", materialID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	var owned int64
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("id = ? AND teacher_id = ?", material.CourseID, teacherID).
		Count(&owned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if owned == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "You don't have permission to delete this material")
	}

	if err := ctrl.DB.Delete(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete material")
	}
	return helper.JsonDeleted(c, "Material deleted successfully", nil)
}

// requireEnrollmentForStudent menolak student yang belum terdaftar;
// role lain selalu lolos. ok == false berarti response error sudah
// ditulis dan handler harus langsung return res (nilai JsonError bisa
// nil, jadi tidak boleh dipakai sebagai penanda gagal).
func (ctrl *MaterialController) requireEnrollmentForStudent(c *fiber.Ctx, courseID uuid.UUID) (ok bool, res error) {
	if authMiddleware.Role(c) != constants.RoleStudent {
		return true, nil
	}
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return false, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var enrolled int64
	if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&enrolled).Error; err != nil {
		return false, helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if enrolled == 0 {
		return false, helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}
	return true, nil
}
