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

func TestOwnedAssignmentRejectsInvalidAssignmentID(t *testing.T) {
	// assignment == nil dari helper harus menghentikan handler di guard,
	// sebelum body parsing atau akses DB
	ctrl := &AssignmentController{}
	app := fiber.New()
	app.Put("/assignments/:assignment_id", func(c *fiber.Ctx) error {
		c.Locals(authMiddleware.LocUserID, uuid.NewString())
		c.Locals(authMiddleware.LocUserRole, constants.RoleTeacher)
		return ctrl.UpdateAssignment(c)
	})

	resp, err := app.Test(httptest.NewRequest("PUT", "/assignments/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestOwnedAssignmentRejectsMissingIdentity(t *testing.T) {
	ctrl := &AssignmentController{}
	app := fiber.New()
	app.Delete("/assignments/:assignment_id", ctrl.DeleteAssignment)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/assignments/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
