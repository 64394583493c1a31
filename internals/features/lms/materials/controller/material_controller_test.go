package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsku_backend/internals/constants"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

// guardApp memasang requireEnrollmentForStudent persis seperti pola
// handler: kalau guard menolak, payload di bawahnya tidak boleh terkirim.
func guardApp(locals map[string]interface{}) *fiber.App {
	ctrl := &MaterialController{}
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		if ok, res := ctrl.requireEnrollmentForStudent(c, uuid.New()); !ok {
			return res
		}
		return helper.JsonOK(c, "OK", fiber.Map{"materials": []string{"handout.pdf"}})
	})
	return app
}

func TestEnrollmentGuardAllowsTeacher(t *testing.T) {
	app := guardApp(map[string]interface{}{
		authMiddleware.LocUserRole: constants.RoleTeacher,
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEnrollmentGuardRejectionReachesClient(t *testing.T) {
	// student tanpa identitas valid: guard harus menghentikan handler,
	// bukan cuma menulis error yang lalu ditimpa response sukses
	app := guardApp(map[string]interface{}{
		authMiddleware.LocUserRole: constants.RoleStudent,
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "handout.pdf")
	assert.True(t, strings.Contains(string(body), `"success":false`))
}
