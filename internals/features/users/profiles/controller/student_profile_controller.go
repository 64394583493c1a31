// internals/features/users/profiles/controller/student_profile_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
	attendanceModel "lmsku_backend/internals/features/lms/attendance/model"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	"lmsku_backend/internals/features/lms/stats"
	profileModel "lmsku_backend/internals/features/users/profiles/model"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

type StudentProfileController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewStudentProfileController(db *gorm.DB, cfg *configs.Config) *StudentProfileController {
	return &StudentProfileController{DB: db, Cfg: cfg}
}

// ========================== PROFILE (GET) ==========================
// GET /api/students/profile — profil + ringkasan enrollment.
// Profil dibuat lazy untuk user lama yang belum punya baris profil.
func (ctrl *StudentProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var profile profileModel.StudentProfileModel
	err = ctrl.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now().UTC()
		profile = profileModel.StudentProfileModel{
			UserID:         userID,
			FullName:       user.UserName,
			EnrollmentDate: &now,
		}
		if createErr := ctrl.DB.Create(&profile).Error; createErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// nomor induk dari 6 digit terakhir user id, diisi sekali
	if profile.StudentID == "" {
		id := user.ID.String()
		profile.StudentID = fmt.Sprintf("ST-%s", id[len(id)-6:])
		if err := ctrl.DB.Model(&profile).Update("student_id", profile.StudentID).Error; err != nil {
			log.Println("[WARN] gagal set student_id:", err)
		}
	}

	type enrollmentSummary struct {
		CourseID       string    `json:"course_id"`
		CourseName     string    `json:"course_name"`
		EnrollmentDate time.Time `json:"enrollment_date"`
		Progress       int       `json:"progress"`
		Status         string    `json:"status"`
	}

	var enrollments []courseModel.EnrollmentModel
	if err := ctrl.DB.Where("student_id = ?", userID).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	summaries := make([]enrollmentSummary, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "id = ?", e.CourseID).Error; err != nil {
			continue
		}
		summaries = append(summaries, enrollmentSummary{
			CourseID:       e.CourseID.String(),
			CourseName:     course.CourseName,
			EnrollmentDate: e.EnrollmentDate,
			Progress:       e.Progress,
			Status:         e.Status,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"profile":     profile,
		"enrollments": summaries,
		"email":       user.Email,
		"username":    user.UserName,
	})
}

// ========================== PROFILE (UPDATE) ==========================
// PUT /api/students/profile — multipart; foto profil dikonversi webp.
func (ctrl *StudentProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile profileModel.StudentProfileModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	updates := formProfileUpdates(c, "full_name", "bio", "phone", "address")
	if fh, err := c.FormFile("profile_picture"); err == nil && fh != nil {
		if !helper.IsImageFilename(fh.Filename) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Profile picture must be an image")
		}
		path, convErr := helper.SaveImageAsWebp(fh, ctrl.Cfg.UploadFolder, "profile_pictures")
		if convErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process profile picture")
		}
		updates["profile_picture"] = path
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&profile).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	return helper.JsonUpdated(c, "Profile updated successfully", fiber.Map{"profile": profile})
}

// ========================== PROGRESS ==========================
// GET /api/students/progress — agregat per course + overall.
// Nilai & kehadiran dibulatkan ke integer untuk dashboard.
func (ctrl *StudentProfileController) GetProgress(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []courseModel.EnrollmentModel
	if err := ctrl.DB.Where("student_id = ?", userID).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	type courseProgress struct {
		CourseID   string  `json:"course_id"`
		CourseName string  `json:"course_name"`
		Instructor string  `json:"instructor"`
		Progress   int     `json:"progress"`
		Score      float64 `json:"score"`
		Attendance float64 `json:"attendance"`
		Completed  bool    `json:"completed"`
	}

	courses := make([]courseProgress, 0, len(enrollments))
	progresses := make([]float64, 0, len(enrollments))
	for _, e := range enrollments {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, "id = ?", e.CourseID).Error; err != nil {
			continue
		}

		var assignmentIDs []string
		if err := ctrl.DB.Model(&assignmentModel.AssignmentModel{}).
			Where("course_id = ?", e.CourseID).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
		}

		var scores []*float64
		if len(assignmentIDs) > 0 {
			if err := ctrl.DB.Model(&assignmentModel.SubmissionModel{}).
				Where("student_id = ? AND assignment_id IN ?", userID, assignmentIDs).
				Pluck("score", &scores).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
			}
		}

		var statuses []string
		if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
			Where("course_id = ? AND student_id = ?", e.CourseID, userID).
			Pluck("status", &statuses).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
		}

		courses = append(courses, courseProgress{
			CourseID:   e.CourseID.String(),
			CourseName: course.CourseName,
			Instructor: course.InstructorName,
			Progress:   e.Progress,
			Score:      stats.Round0(stats.PerformanceScore(scores)),
			Attendance: stats.Round0(stats.AttendanceRate(statuses)),
			Completed:  e.Progress >= 100,
		})
		progresses = append(progresses, float64(e.Progress))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"overall_progress": stats.Round0(stats.OverallProgress(progresses)),
		"courses":          courses,
	})
}

// formProfileUpdates mengambil field form yang dikirim saja.
func formProfileUpdates(c *fiber.Ctx, fields ...string) map[string]interface{} {
	updates := map[string]interface{}{}
	for _, f := range fields {
		if v := c.FormValue(f); v != "" {
			updates[f] = v
		}
	}
	return updates
}
