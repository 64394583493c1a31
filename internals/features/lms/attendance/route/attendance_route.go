// internals/features/lms/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	attendanceController "lmsku_backend/internals/features/lms/attendance/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance", authMiddleware.AuthMiddleware(db, cfg))

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mencatat kehadiran"), constants.RoleTeacher)
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("melihat kehadiran"), constants.RoleStudent)

	// 🎓 teacher
	attendance.Post("/record", teacherOnly, ctrl.RecordAttendance)
	attendance.Post("/bulk-record", teacherOnly, ctrl.BulkRecordAttendance)
	attendance.Get("/course/:course_id", teacherOnly, ctrl.GetCourseAttendance)

	// 🧑‍🎓 student
	attendance.Get("/student", studentOnly, ctrl.GetStudentAttendance)
}
