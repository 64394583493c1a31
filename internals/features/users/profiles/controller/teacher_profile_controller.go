// internals/features/users/profiles/controller/teacher_profile_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	profileModel "lmsku_backend/internals/features/users/profiles/model"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

type TeacherProfileController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewTeacherProfileController(db *gorm.DB, cfg *configs.Config) *TeacherProfileController {
	return &TeacherProfileController{DB: db, Cfg: cfg}
}

// ========================== PROFILE (GET) ==========================
// GET /api/teachers/profile — profil + ringkasan course yang diampu.
func (ctrl *TeacherProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var profile profileModel.TeacherProfileModel
	err = ctrl.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = profileModel.TeacherProfileModel{UserID: userID, FullName: user.UserName}
		if createErr := ctrl.DB.Create(&profile).Error; createErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	type courseSummary struct {
		CourseID      string `json:"course_id"`
		CourseName    string `json:"course_name"`
		CourseCode    string `json:"course_code"`
		StudentsCount int64  `json:"students_count"`
		Status        string `json:"status"`
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Where("teacher_id = ?", userID).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	summaries := make([]courseSummary, 0, len(courses))
	for _, course := range courses {
		var count int64
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
		}
		summaries = append(summaries, courseSummary{
			CourseID:      course.ID.String(),
			CourseName:    course.CourseName,
			CourseCode:    course.CourseCode,
			StudentsCount: count,
			Status:        course.EnrollmentStatus,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"profile":  profile,
		"courses":  summaries,
		"email":    user.Email,
		"username": user.UserName,
	})
}

// ========================== PROFILE (UPDATE) ==========================
// PUT /api/teachers/profile
func (ctrl *TeacherProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile profileModel.TeacherProfileModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	updates := formProfileUpdates(c,
		"full_name", "bio", "phone", "address", "department", "position", "office")
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

// ========================== DASHBOARD ==========================
// GET /api/teachers/dashboard — course, total student unik, dan maksimal
// 5 tugas berikutnya yang deadline-nya belum lewat.
func (ctrl *TeacherProfileController) GetDashboard(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	type courseSummary struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Code          string `json:"code"`
		StudentsCount int64  `json:"studentsCount"`
		Status        string `json:"status"`
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.Where("teacher_id = ?", userID).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	courseIDs := make([]string, 0, len(courses))
	summaries := make([]courseSummary, 0, len(courses))
	for _, course := range courses {
		var count int64
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
		}
		summaries = append(summaries, courseSummary{
			ID:            course.ID.String(),
			Name:          course.CourseName,
			Code:          course.CourseCode,
			StudentsCount: count,
			Status:        course.EnrollmentStatus,
		})
		courseIDs = append(courseIDs, course.ID.String())
	}

	// student unik di semua course yang diampu
	var totalStudents int64
	if len(courseIDs) > 0 {
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id IN ?", courseIDs).
			Distinct("student_id").
			Count(&totalStudents).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
		}
	}

	// maksimal 5 tugas mendatang, deadline terdekat dulu
	type pendingAssignment struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		CourseName      string `json:"courseName"`
		DueDate         string `json:"dueDate"`
		SubmissionCount int64  `json:"submissionCount"`
		TotalStudents   int64  `json:"totalStudents"`
	}

	var assignments []assignmentModel.AssignmentModel
	if err := ctrl.DB.Where("teacher_id = ? AND deadline >= ?", userID, time.Now().UTC()).
		Order("deadline ASC").Limit(5).Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
	}

	pending := make([]pendingAssignment, 0, len(assignments))
	for _, a := range assignments {
		var submissionCount, enrolledCount int64
		if err := ctrl.DB.Model(&assignmentModel.SubmissionModel{}).
			Where("assignment_id = ?", a.ID).Count(&submissionCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
		}
		if err := ctrl.DB.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ?", a.CourseID).Count(&enrolledCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard")
		}
		pending = append(pending, pendingAssignment{
			ID:              a.ID.String(),
			Title:           a.Title,
			CourseName:      a.CourseName,
			DueDate:         a.Deadline.Format("Jan 2, 2006"),
			SubmissionCount: submissionCount,
			TotalStudents:   enrolledCount,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"courses":            summaries,
		"totalStudents":      totalStudents,
		"pendingAssignments": pending,
	})
}
