// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	authService "lmsku_backend/internals/features/users/auth/service"
)

// AuthController — lapisan tipis di atas AuthService & PasswordService,
// dipakai oleh route untuk wiring handler.
type AuthController struct {
	Auth     *authService.AuthService
	Password *authService.PasswordService
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		Auth:     authService.NewAuthService(db, cfg),
		Password: authService.NewPasswordService(db, cfg),
	}
}

func (ctrl *AuthController) Signup(c *fiber.Ctx) error      { return ctrl.Auth.Signup(c) }
func (ctrl *AuthController) Login(c *fiber.Ctx) error       { return ctrl.Auth.Login(c) }
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error { return ctrl.Auth.LoginGoogle(c) }
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return ctrl.Auth.RefreshToken(c)
}
func (ctrl *AuthController) Logout(c *fiber.Ctx) error { return ctrl.Auth.Logout(c) }

func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return ctrl.Password.ForgotPassword(c)
}
func (ctrl *AuthController) VerifyOTP(c *fiber.Ctx) error { return ctrl.Password.VerifyOTP(c) }
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	return ctrl.Password.ResetPassword(c)
}
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return ctrl.Password.ChangePassword(c)
}
