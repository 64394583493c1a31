// internals/features/lms/attendance/controller/attendance_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceDTO "lmsku_backend/internals/features/lms/attendance/dto"
	attendanceModel "lmsku_backend/internals/features/lms/attendance/model"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	"lmsku_backend/internals/features/lms/stats"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// ========================== RECORD ==========================
// POST /api/attendance/record (teacher pemilik course)
// Upsert per (course, student, tanggal): record kedua di hari yang sama
// menimpa status lama, bukan membuat duplikat.
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attendanceDTO.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	courseID, _ := uuid.Parse(req.CourseID)
	studentID, _ := uuid.Parse(req.StudentID)
	date, err := attendanceDTO.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DD)")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
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

	record := attendanceModel.AttendanceModel{
		CourseID:   courseID,
		StudentID:  studentID,
		Date:       date,
		Status:     req.Status,
		Time:       req.Time,
		Note:       req.Note,
		RecordedBy: teacherID,
	}
	// ON CONFLICT pada unique index (course, student, date)
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "course_id"}, {Name: "student_id"}, {Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "time", "note", "recorded_by"}),
	}).Create(&record).Error
	if err != nil {
		log.Println("[ERROR] gagal record attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helper.JsonOK(c, "Attendance recorded successfully", nil)
}

// ========================== BULK RECORD ==========================
// POST /api/attendance/bulk-record — student tak terdaftar DILEWATI,
// sisanya tetap diproses.
func (ctrl *AttendanceController) BulkRecordAttendance(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attendanceDTO.BulkRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	courseID, _ := uuid.Parse(req.CourseID)
	date, err := attendanceDTO.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DD)")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("id = ? AND teacher_id = ?", courseID, teacherID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found or you don't have permission")
	}

	for _, entry := range req.Records {
		studentID, err := uuid.Parse(entry.StudentID)
		if err != nil {
			continue
		}

		var enrolled int64
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ? AND student_id = ?", courseID, studentID).
			Count(&enrolled).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if enrolled == 0 {
			continue
		}

		record := attendanceModel.AttendanceModel{
			CourseID:   courseID,
			StudentID:  studentID,
			Date:       date,
			Status:     entry.Status,
			Time:       entry.Time,
			Note:       entry.Note,
			RecordedBy: teacherID,
		}
		err = ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "course_id"}, {Name: "student_id"}, {Name: "date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "time", "note", "recorded_by"}),
		}).Create(&record).Error
		if err != nil {
			log.Printf("[WARN] gagal record attendance student %s: %v", studentID, err)
		}
	}

	return helper.JsonOK(c, "Attendance recorded successfully for all students", nil)
}

// ========================== LIST (TEACHER, PER COURSE) ==========================
// GET /api/attendance/course/:course_id?start_date=&end_date=
func (ctrl *AttendanceController) GetCourseAttendance(c *fiber.Ctx) error {
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

	query := ctrl.DB.Where("course_id = ?", courseID)
	startDate, endDate := c.Query("start_date"), c.Query("end_date")
	if startDate != "" && endDate != "" {
		start, err1 := attendanceDTO.ParseDate(startDate)
		end, err2 := attendanceDTO.ParseDate(endDate)
		if err1 != nil || err2 != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DD)")
		}
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	var records []attendanceModel.AttendanceModel
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	resp := make([]attendanceDTO.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		item := attendanceDTO.AttendanceRecordResponse{AttendanceModel: r}
		var student userModel.UserModel
		if err := ctrl.DB.First(&student, "id = ?", r.StudentID).Error; err == nil {
			item.StudentName = student.UserName
		}
		resp = append(resp, item)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"attendance_records": resp})
}

// ========================== LIST (STUDENT) ==========================
// GET /api/attendance/student?course_id= — record + statistik
// (rate dibulatkan 2 desimal).
func (ctrl *AttendanceController) GetStudentAttendance(c *fiber.Ctx) error {
	studentID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	query := ctrl.DB.Where("student_id = ?", studentID)
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		query = query.Where("course_id = ?", courseID)
	}

	var records []attendanceModel.AttendanceModel
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	resp := make([]attendanceDTO.AttendanceRecordResponse, 0, len(records))
	statuses := make([]string, 0, len(records))
	for _, r := range records {
		item := attendanceDTO.AttendanceRecordResponse{AttendanceModel: r}
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "id = ?", r.CourseID).Error; err == nil {
			item.CourseName = course.CourseName
		}
		resp = append(resp, item)
		statuses = append(statuses, r.Status)
	}

	breakdown := stats.AttendanceBreakdown(statuses)
	breakdown.Rate = stats.Round2(breakdown.Rate)

	return helper.JsonOK(c, "OK", fiber.Map{
		"attendance_records": resp,
		"statistics":         breakdown,
	})
}
