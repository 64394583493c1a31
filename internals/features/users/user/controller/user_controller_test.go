package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsku_backend/internals/constants"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

func TestUserFromParamRejectsInvalidUserID(t *testing.T) {
	// user == nil dari helper harus membuat handler return di guard,
	// bukan men-dereference pointer nil
	ctrl := &UserController{}
	app := fiber.New()
	app.Get("/users/:user_id", func(c *fiber.Ctx) error {
		c.Locals(authMiddleware.LocUserID, uuid.NewString())
		c.Locals(authMiddleware.LocUserRole, constants.RoleAdmin)
		return ctrl.GetUser(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/users/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
