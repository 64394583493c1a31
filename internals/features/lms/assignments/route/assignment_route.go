// internals/features/lms/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	assignmentController "lmsku_backend/internals/features/lms/assignments/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := assignmentController.NewAssignmentController(db, cfg)

	assignments := api.Group("/assignments", authMiddleware.AuthMiddleware(db, cfg))

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mengelola tugas"), constants.RoleTeacher)
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("mengakses tugas"), constants.RoleStudent)

	// 🎓 teacher
	assignments.Post("/create", teacherOnly, ctrl.CreateAssignment)
	assignments.Get("/teacher", teacherOnly, ctrl.GetTeacherAssignments)
	assignments.Put("/:assignment_id", teacherOnly, ctrl.UpdateAssignment)
	assignments.Delete("/:assignment_id", teacherOnly, ctrl.DeleteAssignment)
	assignments.Post("/:assignment_id/grade/:student_id", teacherOnly, ctrl.GradeSubmission)

	// 🧑‍🎓 student
	assignments.Get("/student", studentOnly, ctrl.GetStudentAssignments)
	assignments.Post("/:assignment_id/submit", studentOnly, ctrl.SubmitAssignment)
}
