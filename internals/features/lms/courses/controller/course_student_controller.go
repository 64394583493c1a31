// internals/features/lms/courses/controller/course_student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
	attendanceModel "lmsku_backend/internals/features/lms/attendance/model"
	courseDTO "lmsku_backend/internals/features/lms/courses/dto"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	"lmsku_backend/internals/features/lms/stats"
	profileModel "lmsku_backend/internals/features/users/profiles/model"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
)

// GET /api/courses/:course_id/students (teacher pemilik)
// Daftar peserta lengkap dengan agregat kehadiran & nilai per student.
// Agregat dibulatkan ke integer untuk tampilan dashboard.
func (ctrl *CourseController) GetCourseStudents(c *fiber.Ctx) error {
	course, res := ctrl.ownedCourse(c)
	if course == nil {
		return res
	}

	var enrollments []courseModel.EnrollmentModel
	if err := ctrl.DB.Where("course_id = ?", course.ID).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	// assignment ids sekali ambil, dipakai untuk semua student
	var assignmentIDs []string
	if err := ctrl.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("course_id = ?", course.ID).
		Pluck("id", &assignmentIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	students := make([]courseDTO.CourseStudentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		var user userModel.UserModel
		if err := ctrl.DB.First(&user, "id = ?", e.StudentID).Error; err != nil {
			continue
		}

		fullName := user.UserName
		var profile profileModel.StudentProfileModel
		if err := ctrl.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil &&
			profile.FullName != "" {
			fullName = profile.FullName
		}

		var statuses []string
		if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
			Where("course_id = ? AND student_id = ?", course.ID, user.ID).
			Pluck("status", &statuses).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
		}

		var scores []*float64
		if len(assignmentIDs) > 0 {
			if err := ctrl.DB.Model(&assignmentModel.SubmissionModel{}).
				Where("student_id = ? AND assignment_id IN ?", user.ID, assignmentIDs).
				Pluck("score", &scores).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
			}
		}

		students = append(students, courseDTO.CourseStudentResponse{
			ID:             user.ID.String(),
			UserName:       user.UserName,
			Email:          user.Email,
			FullName:       fullName,
			Progress:       e.Progress,
			Status:         e.Status,
			EnrollmentDate: e.EnrollmentDate,
			Attendance:     stats.Round0(stats.AttendanceRate(statuses)),
			Performance:    stats.Round0(stats.PerformanceScore(scores)),
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{"students": students})
}
