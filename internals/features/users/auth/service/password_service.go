// internals/features/users/auth/service/password_service.go
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	authModel "lmsku_backend/internals/features/users/auth/model"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	"lmsku_backend/internals/helpers/mailer"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

const otpTTL = 15 * time.Minute

// Pesan forgot-password selalu sama, terdaftar atau tidak —
// jangan bocorkan keberadaan email lewat response.
const forgotPasswordMessage = "If your email is registered, you will receive a password reset link"

// PasswordService — alur reset via OTP 6 digit + change password.
type PasswordService struct {
	DB     *gorm.DB
	Cfg    *configs.Config
	Mailer mailer.Mailer
}

func NewPasswordService(db *gorm.DB, cfg *configs.Config) *PasswordService {
	return &PasswordService{DB: db, Cfg: cfg, Mailer: mailer.New(cfg)}
}

// GenerateOTP menghasilkan OTP numerik 6 digit dari crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ========================== FORGOT PASSWORD ==========================
// POST /api/auth/forgot-password
func (s *PasswordService) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// email tidak terdaftar → response tetap sama
		return helper.JsonOK(c, forgotPasswordMessage, nil)
	}

	otp, err := GenerateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
	}

	// buang OTP lama milik email ini, lalu buat baris baru
	if err := s.DB.Where("email = ?", req.Email).Delete(&authModel.PasswordResetModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	reset := authModel.PasswordResetModel{
		Email:     req.Email,
		OTP:       otp,
		ExpiresAt: time.Now().UTC().Add(otpTTL),
	}
	if err := s.DB.Create(&reset).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	s.Mailer.SendPasswordResetOTP(req.Email, otp)

	return helper.JsonOK(c, forgotPasswordMessage, nil)
}

// ========================== VERIFY OTP ==========================
// POST /api/auth/verify-otp
func (s *PasswordService) VerifyOTP(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6,numeric"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var reset authModel.PasswordResetModel
	err := s.DB.Where("email = ? AND otp = ?", req.Email, req.OTP).First(&reset).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid OTP")
	}
	if time.Now().UTC().After(reset.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "OTP has expired")
	}

	if err := s.DB.Model(&reset).Update("verified", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "OTP verified successfully", nil)
}

// ========================== RESET PASSWORD ==========================
// POST /api/auth/reset-password — hanya jalan setelah OTP diverifikasi.
func (s *PasswordService) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Email       string `json:"email" validate:"required,email"`
		OTP         string `json:"otp" validate:"required,len=6,numeric"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var reset authModel.PasswordResetModel
	err := s.DB.Where("email = ? AND otp = ? AND verified = ?", req.Email, req.OTP, true).
		First(&reset).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or unverified OTP")
	}
	if time.Now().UTC().After(reset.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "OTP has expired")
	}

	var user userModel.UserModel
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", req.Email).Delete(&authModel.PasswordResetModel{}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonOK(c, "Password reset successfully", nil)
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/auth/change-password — user login, wajib password lama.
func (s *PasswordService) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals(authMiddleware.LocUserID).(string)
	if !ok || userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Incorrect current password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := s.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	return helper.JsonOK(c, "Password changed successfully", nil)
}
