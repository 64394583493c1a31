package auth

import (
	"github.com/gofiber/fiber/v2"

	"lmsku_backend/internals/constants"
	helper "lmsku_backend/internals/helpers"
)

// OnlyRoles — gate role setelah AuthMiddleware. Deny by default:
// role kosong/tidak dikenal selalu ditolak, tidak pernah lolos diam-diam.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusForbidden, "Unknown role")
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customMessage)
	}
}

// OnlySuperuser — operasi admin global (manajemen user) butuh flag
// is_superuser, bukan sekadar role admin.
func OnlySuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSuper, ok := c.Locals(LocIsSuperuser).(bool)
		if !ok || !isSuper {
			return helper.JsonError(c, fiber.StatusForbidden, "The user doesn't have enough privileges")
		}
		return c.Next()
	}
}
