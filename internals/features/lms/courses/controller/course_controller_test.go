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

// manageApp memasang GetCourseManage di belakang locals buatan, tanpa DB.
// Jalur gagal ownedCourse harus berhenti di guard sebelum menyentuh DB.
func manageApp(locals map[string]interface{}) *fiber.App {
	ctrl := &CourseController{}
	app := fiber.New()
	app.Get("/courses/:course_id/manage", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		return ctrl.GetCourseManage(c)
	})
	return app
}

func TestOwnedCourseRejectsMissingIdentity(t *testing.T) {
	app := manageApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/"+uuid.NewString()+"/manage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOwnedCourseRejectsInvalidCourseID(t *testing.T) {
	// course == nil dari helper harus membuat handler langsung return,
	// bukan lanjut men-dereference pointer nil
	app := manageApp(map[string]interface{}{
		authMiddleware.LocUserID:   uuid.NewString(),
		authMiddleware.LocUserRole: constants.RoleTeacher,
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/not-a-uuid/manage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
