// internals/features/users/user/controller/user_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "lmsku_backend/internals/features/users/user/dto"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ========================== ME ==========================
// GET /api/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "OK", userDTO.ToUserResponse(&user))
}

// ========================== UPDATE ME ==========================
// PUT /api/users/me — role & is_superuser TIDAK bisa diubah dari sini.
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req userDTO.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	updates, res := buildUserUpdates(c, req.UserName, req.Email, req.Password)
	if updates == nil {
		return res
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
		}
	}

	return helper.JsonUpdated(c, "User updated successfully", userDTO.ToUserResponse(&user))
}

// ========================== LIST (ADMIN) ==========================
// GET /api/users?skip=&limit=&role= (superuser)
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	skip, _ := strconv.Atoi(c.Query("skip", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := ctrl.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var users []userModel.UserModel
	if err := query.Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	resp := make([]userDTO.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userDTO.ToUserResponse(&users[i]))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total": total,
		"users": resp,
	})
}

// ========================== GET BY ID (ADMIN) ==========================
// GET /api/users/:user_id (superuser)
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	user, res := ctrl.userFromParam(c)
	if user == nil {
		return res
	}
	return helper.JsonOK(c, "OK", userDTO.ToUserResponse(user))
}

// ========================== UPDATE (ADMIN) ==========================
// PUT /api/users/:user_id (superuser) — role tetap tidak bisa diubah.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	user, res := ctrl.userFromParam(c)
	if user == nil {
		return res
	}

	var req userDTO.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates, res := buildUserUpdates(c, req.UserName, req.Email, req.Password)
	if updates == nil {
		return res
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(user).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
		}
	}

	return helper.JsonUpdated(c, "User updated successfully", userDTO.ToUserResponse(user))
}

// ========================== DELETE (ADMIN) ==========================
// DELETE /api/users/:user_id (superuser)
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	user, res := ctrl.userFromParam(c)
	if user == nil {
		return res
	}
	if err := ctrl.DB.Delete(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted successfully", nil)
}

// userFromParam memuat user dari path param. user == nil berarti
// response error sudah ditulis; handler harus langsung return res
// (nilai JsonError bisa nil, jadi bukan penanda gagal).
func (ctrl *UserController) userFromParam(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return &user, nil
}

// buildUserUpdates — kolom yang boleh diubah dari DTO; password selalu
// di-hash ulang. Sukses selalu mengembalikan map non-nil (boleh kosong);
// updates == nil berarti response error sudah ditulis.
func buildUserUpdates(c *fiber.Ctx, username, email, password *string) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if username != nil {
		updates["user_name"] = *username
	}
	if email != nil {
		updates["email"] = *email
	}
	if password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["password"] = string(hashed)
	}
	return updates, nil
}
