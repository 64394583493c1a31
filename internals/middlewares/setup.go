package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lmsku_backend/internals/configs"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling luar supaya panic di middleware lain ikut tertangkap).
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg))
	app.Use(GlobalRateLimiter())
}
