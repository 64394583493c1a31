package dto

import (
	"strings"

	uModel "lmsku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// SignupRequest — role dipilih sekali saat daftar, tidak bisa diubah.
type SignupRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

// Normalize — trim & normalisasi dasar
func (r *SignupRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(strings.ToLower(r.Role))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

// UpdateMeRequest — partial update (pointer supaya bisa bedakan omit vs null).
// Sengaja TIDAK ada field role/is_superuser di sini.
type UpdateMeRequest struct {
	UserName *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

func (r *UpdateMeRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
}

// AdminUpdateUserRequest — admin boleh set is_active, tetap tidak bisa ganti role.
type AdminUpdateUserRequest struct {
	UserName *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *AdminUpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	UserName    string `json:"username"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

func ToUserResponse(u *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		UserName:    u.UserName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}
