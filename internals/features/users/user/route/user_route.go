// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	userController "lmsku_backend/internals/features/users/user/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users", authMiddleware.AuthMiddleware(db, cfg))

	// 👤 user sendiri
	users.Get("/me", ctrl.Me)
	users.Put("/me", ctrl.UpdateMe)

	// 🛡️ superuser
	users.Get("/", authMiddleware.OnlySuperuser(), ctrl.ListUsers)
	users.Get("/:user_id", authMiddleware.OnlySuperuser(), ctrl.GetUser)
	users.Put("/:user_id", authMiddleware.OnlySuperuser(), ctrl.UpdateUser)
	users.Delete("/:user_id", authMiddleware.OnlySuperuser(), ctrl.DeleteUser)
}
