// internals/features/lms/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	courseController "lmsku_backend/internals/features/lms/courses/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

// CourseRoutes — semua endpoint di bawah auth; gate role per endpoint.
func CourseRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := courseController.NewCourseController(db, cfg)

	courses := api.Group("/courses", authMiddleware.AuthMiddleware(db, cfg))

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mengelola course"), constants.RoleTeacher)
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("mengakses course"), constants.RoleStudent)

	// 🎓 teacher
	courses.Post("/addCourse", teacherOnly, ctrl.CreateCourse)
	courses.Get("/teacher/courses", teacherOnly, ctrl.GetTeacherCourses)
	courses.Get("/:course_id/manage", teacherOnly, ctrl.GetCourseManage)
	courses.Put("/:course_id/manage", teacherOnly, ctrl.UpdateCourse)
	courses.Post("/:course_id/modules", teacherOnly, ctrl.CreateModule)
	courses.Post("/:course_id/modules/:module_id/lessons", teacherOnly, ctrl.CreateLesson)
	courses.Delete("/:course_id/modules/:module_id/lessons/:lesson_id", teacherOnly, ctrl.DeleteLesson)
	courses.Get("/:course_id/students", teacherOnly, ctrl.GetCourseStudents)

	// 🧑‍🎓 student
	courses.Get("/getallcourses", studentOnly, ctrl.GetAllCourses)
	courses.Get("/enrolled", studentOnly, ctrl.GetEnrolledCourses)
	courses.Post("/enroll", studentOnly, ctrl.Enroll)

	// 👥 semua role yang login (student dicek enrollment di controller)
	courses.Get("/:course_id/modules", ctrl.GetCourseModules)
}
