// internals/features/lms/materials/route/material_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	materialController "lmsku_backend/internals/features/lms/materials/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func MaterialRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := materialController.NewMaterialController(db, cfg)

	materials := api.Group("/materials", authMiddleware.AuthMiddleware(db, cfg))

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mengelola materi"), constants.RoleTeacher)

	// 🎓 teacher
	materials.Post("/upload", teacherOnly, ctrl.UploadMaterial)
	materials.Delete("/:material_id", teacherOnly, ctrl.DeleteMaterial)

	// 👥 semua role login (student dicek enrollment di controller)
	materials.Get("/course/:course_id", ctrl.GetCourseMaterials)
	materials.Get("/:material_id", ctrl.GetMaterial)
}
