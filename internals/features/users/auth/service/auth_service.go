// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	profileModel "lmsku_backend/internals/features/users/profiles/model"
	userDTO "lmsku_backend/internals/features/users/user/dto"
	userModel "lmsku_backend/internals/features/users/user/model"
	helper "lmsku_backend/internals/helpers"
)

var validate = validator.New()

// AuthService — signup/login/refresh/logout. Semua operasi fail-fast;
// tidak ada retry di layer ini.
type AuthService struct {
	DB     *gorm.DB
	Cfg    *configs.Config
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, cfg *configs.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg, Tokens: NewTokenService(cfg)}
}

// ========================== SIGNUP ==========================
// POST /api/auth/signup
func (s *AuthService) Signup(c *fiber.Ctx) error {
	var req userDTO.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// email unik
	var existing userModel.UserModel
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	newUser := userModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.DB.Create(&newUser).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// profil awal sesuai role
	s.createInitialProfile(&newUser)

	return helper.JsonCreated(c, "User created successfully", userDTO.ToUserResponse(&newUser))
}

func (s *AuthService) createInitialProfile(u *userModel.UserModel) {
	switch u.Role {
	case constants.RoleStudent:
		p := profileModel.StudentProfileModel{UserID: u.ID, FullName: u.UserName}
		if err := s.DB.Create(&p).Error; err != nil {
			log.Printf("[ERROR] gagal membuat student profile %s: %v", u.ID, err)
		}
	case constants.RoleTeacher:
		p := profileModel.TeacherProfileModel{UserID: u.ID, FullName: u.UserName}
		if err := s.DB.Create(&p).Error; err != nil {
			log.Printf("[ERROR] gagal membuat teacher profile %s: %v", u.ID, err)
		}
	}
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Inactive user")
	}

	return s.issueTokenPair(c, &user, "Login successful")
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
// Verifikasi ID token Google; user baru otomatis terdaftar sebagai student.
func (s *AuthService) LoginGoogle(c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{s.Cfg.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = s.DB.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// belum ada → daftar baru sebagai student
		dummy, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: string(dummy),
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if createErr := s.DB.Create(&user).Error; createErr != nil {
			if helper.IsUniqueViolation(createErr) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		s.createInitialProfile(&user)
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Inactive user")
	}
	return s.issueTokenPair(c, &user, "Login successful")
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
// Rotasi: access + refresh baru diterbitkan; refresh lama TIDAK dicabut
// di server (tidak ada revocation list — lihat TokenService).
func (s *AuthService) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token required")
	}

	userID, err := s.Tokens.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Could not validate credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Inactive user")
	}

	return s.issueTokenPair(c, &user, "Token refreshed")
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout — hanya menghapus cookie di sisi client.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	s.Tokens.ClearRefreshCookie(c)
	return helper.JsonOK(c, "Successfully logged out", nil)
}

func (s *AuthService) issueTokenPair(c *fiber.Ctx, user *userModel.UserModel, message string) error {
	access, err := s.Tokens.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create access token")
	}
	refresh, err := s.Tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create refresh token")
	}
	s.Tokens.SetRefreshCookie(c, refresh)

	return helper.JsonOK(c, message, fiber.Map{
		"access_token": access,
		"token_type":   "bearer",
		"user":         userDTO.ToUserResponse(user),
	})
}
