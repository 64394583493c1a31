// internals/features/lms/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	courseDTO "lmsku_backend/internals/features/lms/courses/dto"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	courseService "lmsku_backend/internals/features/lms/courses/service"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type CourseController struct {
	DB          *gorm.DB
	Cfg         *configs.Config
	Enrollments *courseService.EnrollmentService
}

func NewCourseController(db *gorm.DB, cfg *configs.Config) *CourseController {
	return &CourseController{
		DB:          db,
		Cfg:         cfg,
		Enrollments: courseService.NewEnrollmentService(db),
	}
}

// ========================== CREATE ==========================
// POST /api/courses/addCourse (teacher)
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course := req.ToModel()
	course.TeacherID = teacherID

	// thumbnail opsional — dikonversi webp sebelum disimpan
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		if !helper.IsImageFilename(fh.Filename) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Thumbnail must be an image")
		}
		path, convErr := helper.SaveImageAsWebp(fh, ctrl.Cfg.UploadFolder, "course_thumbnails")
		if convErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process thumbnail")
		}
		course.Thumbnail = &path
	}

	if err := ctrl.DB.Create(course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Course with this code already exists")
		}
		log.Println("[ERROR] gagal membuat course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created successfully", courseDTO.ToCourseResponse(course, 0))
}

// ========================== LIST (TEACHER) ==========================
// GET /api/courses/teacher/courses
func (ctrl *CourseController) GetTeacherCourses(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	resp, err := ctrl.withEnrolledCounts(courses)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"courses": resp})
}

// ========================== LIST (STUDENT, BELUM TERDAFTAR) ==========================
// GET /api/courses/getallcourses — hanya course Open yang belum diikuti.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sub := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
		Select("course_id").
		Where("student_id = ?", studentID)

	var courses []courseModel.CourseModel
	if err := ctrl.DB.
		Where("enrollment_status = ?", courseModel.EnrollmentOpen).
		Where("id NOT IN (?)", sub).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	resp, err := ctrl.withEnrolledCounts(courses)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"courses": resp})
}

// ========================== LIST (STUDENT, TERDAFTAR) ==========================
// GET /api/courses/enrolled — course + progress milik student.
func (ctrl *CourseController) GetEnrolledCourses(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []courseModel.EnrollmentModel
	if err := ctrl.DB.Where("student_id = ?", studentID).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	resp := make([]courseDTO.CourseResponse, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "id = ?", e.CourseID).Error; err != nil {
			continue // course sudah dihapus, lewati
		}
		count, err := ctrl.Enrollments.CountEnrolled(course.ID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
		r := courseDTO.ToCourseResponse(&course, count)
		progress := e.Progress
		r.Progress = &progress
		resp = append(resp, r)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"courses": resp})
}

// ========================== ENROLL ==========================
// POST /api/courses/enroll (student)
func (ctrl *CourseController) Enroll(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, err := uuid.Parse(c.FormValue("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	switch err := ctrl.Enrollments.Enroll(courseID, studentID); {
	case err == nil:
		return helper.JsonOK(c, "Successfully enrolled in course", nil)
	case errors.Is(err, courseService.ErrCourseNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	case errors.Is(err, courseService.ErrAlreadyEnrolled):
		return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this course")
	case errors.Is(err, courseService.ErrCourseFull):
		return helper.JsonError(c, fiber.StatusBadRequest, "Course is full")
	case errors.Is(err, courseService.ErrCourseClosed):
		return helper.JsonError(c, fiber.StatusBadRequest, "Course is not open for enrollment")
	default:
		log.Println("[ERROR] enroll gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
	}
}

// ========================== MANAGE (GET) ==========================
// GET /api/courses/:course_id/manage (teacher pemilik)
func (ctrl *CourseController) GetCourseManage(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	modules, err := ctrl.modulesWithLessons(course.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	count, err := ctrl.Enrollments.CountEnrolled(course.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"course":  courseDTO.ToCourseResponse(course, count),
		"modules": modules,
	})
}

// ========================== MANAGE (UPDATE) ==========================
// PUT /api/courses/:course_id/manage (teacher pemilik)
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.CourseName != nil {
		updates["course_name"] = *req.CourseName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.MaxStudents != nil {
		updates["max_students"] = *req.MaxStudents
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.InstructorName != nil {
		updates["instructor_name"] = *req.InstructorName
	}
	if req.EnrollmentStatus != nil {
		updates["enrollment_status"] = *req.EnrollmentStatus
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(course).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
		}
	}

	return helper.JsonUpdated(c, "Course updated successfully", nil)
}

// ========================== CREATE MODULE ==========================
// POST /api/courses/:course_id/modules (teacher pemilik)
// Order ditentukan server (max+1) DI DALAM transaksi insert.
func (ctrl *CourseController) CreateModule(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	var req courseDTO.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	module := courseModel.CourseModuleModel{
		CourseID:    course.ID,
		Title:       req.Title,
		Description: req.Description,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&courseModel.CourseModuleModel{}).
			Where("course_id = ?", course.ID).
			Select("COALESCE(MAX(module_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		module.Order = maxOrder + 1
		if err := tx.Create(&module).Error; err != nil {
			return err
		}
		return tx.Model(course).Update("has_modules", true).Error
	})
	if err != nil {
		log.Println("[ERROR] gagal membuat module:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}

	return helper.JsonCreated(c, "Module created successfully", courseDTO.ModuleResponse{
		CourseModuleModel: module,
		Lessons:           []courseModel.LessonModel{},
	})
}

// ========================== CREATE LESSON ==========================
// POST /api/courses/:course_id/modules/:module_id/lessons (teacher pemilik)
func (ctrl *CourseController) CreateLesson(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}
	var module courseModel.CourseModuleModel
	if err := ctrl.DB.Where("id = ? AND course_id = ?", moduleID, course.ID).
		First(&module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found or doesn't belong to this course")
	}

	var req courseDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	lesson := courseModel.LessonModel{
		ModuleID:     module.ID,
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		MaterialType: req.MaterialType,
	}
	if req.MaterialType != nil && *req.MaterialType == "link" {
		lesson.MaterialURL = req.MaterialURL
	}
	if fh, err := c.FormFile("material"); err == nil && fh != nil &&
		req.MaterialType != nil && isFileMaterial(*req.MaterialType) {
		path, upErr := helper.SaveUpload(fh, ctrl.Cfg.UploadFolder, "lesson_materials")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save material")
		}
		lesson.MaterialFile = &path
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&courseModel.LessonModel{}).
			Where("module_id = ?", module.ID).
			Select("COALESCE(MAX(lesson_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		lesson.Order = maxOrder + 1
		return tx.Create(&lesson).Error
	})
	if err != nil {
		log.Println("[ERROR] gagal membuat lesson:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, "Lesson created successfully", lesson)
}

func isFileMaterial(materialType string) bool {
	switch materialType {
	case "pdf", "video", "file":
		return true
	}
	return false
}

// ========================== DELETE LESSON ==========================
// DELETE /api/courses/:course_id/modules/:module_id/lessons/:lesson_id
// Order lesson lain TIDAK ditata ulang; urutan boleh berlubang.
func (ctrl *CourseController) DeleteLesson(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}
	var module courseModel.CourseModuleModel
	if err := ctrl.DB.Where("id = ? AND course_id = ?", moduleID, course.ID).
		First(&module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found or doesn't belong to this course")
	}

	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}
	var lesson courseModel.LessonModel
	if err := ctrl.DB.Where("id = ? AND module_id = ?", lessonID, module.ID).
		First(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found or doesn't belong to this module")
	}

	if err := ctrl.DB.Delete(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	return helper.JsonDeleted(c, "Lesson deleted successfully", nil)
}

// ========================== MODULES (SEMUA ROLE) ==========================
// GET /api/courses/:course_id/modules — student harus terdaftar dulu.
func (ctrl *CourseController) GetCourseModules(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if authMiddleware.Role(c) == constants.RoleStudent {
		studentID, err := authMiddleware.UserID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		enrolled, err := ctrl.Enrollments.IsEnrolled(courseID, studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !enrolled {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
		}
	}

	modules, err := ctrl.modulesWithLessons(courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"modules": modules})
}

// ========================== HELPERS ==========================

// ownedCourse memuat course dari path param dan memastikan miliknya
// teacher yang sedang login. course == nil berarti response error sudah
// ditulis; handler harus langsung return res. Caller TIDAK boleh cek
// res != nil sebagai penanda gagal — JsonError mengembalikan nil kalau
// penulisan response sukses.
func (ctrl *CourseController) ownedCourse(c *fiber.Ctx) (*courseModel.CourseModel, error) {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}
	return &course, nil
}

func (ctrl *CourseController) modulesWithLessons(courseID uuid.UUID) ([]courseDTO.ModuleResponse, error) {
	var modules []courseModel.CourseModuleModel
	if err := ctrl.DB.Where("course_id = ?", courseID).
		Order("module_order ASC").Find(&modules).Error; err != nil {
		return nil, err
	}

	resp := make([]courseDTO.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		var lessons []courseModel.LessonModel
		if err := ctrl.DB.Where("module_id = ?", m.ID).
			Order("lesson_order ASC").Find(&lessons).Error; err != nil {
			return nil, err
		}
		resp = append(resp, courseDTO.ModuleResponse{CourseModuleModel: m, Lessons: lessons})
	}
	return resp, nil
}

func (ctrl *CourseController) withEnrolledCounts(courses []courseModel.CourseModel) ([]courseDTO.CourseResponse, error) {
	resp := make([]courseDTO.CourseResponse, 0, len(courses))
	for i := range courses {
		count, err := ctrl.Enrollments.CountEnrolled(courses[i].ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, courseDTO.ToCourseResponse(&courses[i], count))
	}
	return resp, nil
}
