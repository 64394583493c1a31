// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	authController "lmsku_backend/internals/features/users/auth/controller"
	"lmsku_backend/internals/middlewares"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

// AuthRoutes — endpoint publik + change-password yang butuh login.
func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := authController.NewAuthController(db, cfg)

	auth := api.Group("/auth")

	// 🔓 public
	auth.Post("/signup", middlewares.SignupRateLimiter(), ctrl.Signup)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/verify-otp", ctrl.VerifyOTP)
	auth.Post("/reset-password", ctrl.ResetPassword)

	// 🔒 butuh login
	auth.Post("/change-password", authMiddleware.AuthMiddleware(db, cfg), ctrl.ChangePassword)
}
