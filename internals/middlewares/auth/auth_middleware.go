// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
)

// Kunci Locals yang diisi middleware ini — HARUS seragam di semua handler.
const (
	LocUserID      = "user_id"
	LocUserRole    = "userRole"
	LocIsSuperuser = "is_superuser"
)

// UserID membaca user id dari Locals yang diisi AuthMiddleware.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	return uuid.Parse(raw)
}

// Role membaca role user dari Locals.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// AuthMiddleware memverifikasi access token (HS256), memastikan type tag
// "access", lalu memuat user dari DB dan menolak akun nonaktif.
func AuthMiddleware(db *gorm.DB, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
		}

		if cfg.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		// type tag wajib "access" — refresh token tidak boleh dipakai di sini
		if typ, _ := claims["type"].(string); typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token type")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		var user userModel.UserModel
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			log.Println("[ERROR] DB error saat load user:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Inactive user")
		}
		if !constants.IsValidRole(user.Role) {
			// role di luar enum tertutup tidak pernah lolos diam-diam
			return helper.JsonError(c, fiber.StatusForbidden, "Unknown role")
		}

		c.Locals(LocUserID, user.ID.String())
		c.Locals(LocUserRole, user.Role)
		c.Locals(LocIsSuperuser, user.IsSuperuser)
		helper.SetLocalRawToken(c, tokenString)

		return c.Next()
	}
}
