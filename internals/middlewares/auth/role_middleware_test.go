package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsku_backend/internals/constants"
)

// gateApp memasang handler yang menanam locals seperti AuthMiddleware,
// lalu gate yang diuji, lalu handler 200.
func gateApp(locals map[string]interface{}, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		return c.Next()
	}, gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	app := gateApp(map[string]interface{}{LocUserRole: constants.RoleTeacher},
		OnlyRoles("", constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	app := gateApp(map[string]interface{}{LocUserRole: constants.RoleStudent},
		OnlyRoles("teacher only", constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesRejectsMissingRole(t *testing.T) {
	app := gateApp(nil, OnlyRoles("", constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRolesRejectsUnknownRole(t *testing.T) {
	// deny by default: string asing dari token bukan role valid
	app := gateApp(map[string]interface{}{LocUserRole: "superstudent"},
		OnlyRoles("", constants.RoleStudent, constants.RoleTeacher, constants.RoleAdmin))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlySuperuser(t *testing.T) {
	allowed := gateApp(map[string]interface{}{LocIsSuperuser: true}, OnlySuperuser())
	resp, err := allowed.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// role admin tanpa flag superuser tetap ditolak
	denied := gateApp(map[string]interface{}{
		LocUserRole:    constants.RoleAdmin,
		LocIsSuperuser: false,
	}, OnlySuperuser())
	resp, err = denied.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
