// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"lmsku_backend/internals/configs"
	userModel "lmsku_backend/internals/features/users/user/model"
)

// ErrInvalidToken — token malformed / expired / salah type tag.
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenService menerbitkan dan memverifikasi pasangan access/refresh token.
// Keduanya JWT HS256 dengan secret terpisah dan claim "type" sebagai tag —
// refresh token yang disodorkan sebagai access token (atau sebaliknya)
// ditolak terlepas dari masa berlakunya.
//
// Rotasi refresh TIDAK mencabut token lama di sisi server (tidak ada
// revocation list); refresh yang dicuri tetap valid sampai kedaluwarsa.
type TokenService struct {
	cfg *configs.Config
}

func NewTokenService(cfg *configs.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

func (s *TokenService) IssueAccessToken(user *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":          user.ID.String(),
		"role":         user.Role,
		"is_superuser": user.IsSuperuser,
		"type":         tokenTypeAccess,
		"iat":          now.Unix(),
		"exp":          now.Add(s.cfg.AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func (s *TokenService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": tokenTypeRefresh,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.RefreshTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTRefreshSecret))
}

// ParseRefreshToken memverifikasi signature + exp, lalu mewajibkan
// type tag "refresh". Mengembalikan subject (user id).
func (s *TokenService) ParseRefreshToken(raw string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTRefreshSecret), nil
	}); err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	if typ, _ := claims["type"].(string); typ != tokenTypeRefresh {
		return uuid.Nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// SetRefreshCookie — refresh token selalu HTTPOnly + SameSite=Lax,
// tidak pernah dikirim di body response.
func (s *TokenService) SetRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(s.cfg.RefreshTokenTTL.Seconds()),
		Path:     "/",
	})
}

// ClearRefreshCookie — logout hanya menghapus cookie di client;
// token lama tetap valid sampai kedaluwarsa (lihat catatan di atas).
func (s *TokenService) ClearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Path:     "/",
	})
}
