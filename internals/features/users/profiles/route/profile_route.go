// internals/features/users/profiles/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	profileController "lmsku_backend/internals/features/users/profiles/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func ProfileRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	studentCtrl := profileController.NewStudentProfileController(db, cfg)
	teacherCtrl := profileController.NewTeacherProfileController(db, cfg)

	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("profil student"), constants.RoleStudent)
	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("profil teacher"), constants.RoleTeacher)

	// 🧑‍🎓 student
	students := api.Group("/students", authMiddleware.AuthMiddleware(db, cfg), studentOnly)
	students.Get("/profile", studentCtrl.GetProfile)
	students.Put("/profile", studentCtrl.UpdateProfile)
	students.Get("/progress", studentCtrl.GetProgress)

	// 🎓 teacher
	teachers := api.Group("/teachers", authMiddleware.AuthMiddleware(db, cfg), teacherOnly)
	teachers.Get("/profile", teacherCtrl.GetProfile)
	teachers.Put("/profile", teacherCtrl.UpdateProfile)
	teachers.Get("/dashboard", teacherCtrl.GetDashboard)
}
