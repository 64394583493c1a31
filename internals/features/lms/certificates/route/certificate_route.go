// internals/features/lms/certificates/route/certificate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	certificateController "lmsku_backend/internals/features/lms/certificates/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func CertificateRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := certificateController.NewCertificateController(db, cfg)

	certificates := api.Group("/certificates", authMiddleware.AuthMiddleware(db, cfg))

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mengelola sertifikat"), constants.RoleTeacher)
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("melihat sertifikat"), constants.RoleStudent)

	// 🎓 teacher
	certificates.Post("/create", teacherOnly, ctrl.CreateTemplate)
	certificates.Post("/issue/:course_id/:student_id", teacherOnly, ctrl.IssueCertificate)
	certificates.Get("/course/:course_id", teacherOnly, ctrl.GetCourseCertificates)

	// 🧑‍🎓 student
	certificates.Get("/student", studentOnly, ctrl.GetStudentCertificates)
}
