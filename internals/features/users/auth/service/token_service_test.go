package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsku_backend/internals/configs"
	userModel "lmsku_backend/internals/features/users/user/model"
)

func testConfig() *configs.Config {
	return &configs.Config{
		JWTSecret:        "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testConfig())
	userID := uuid.New()

	raw, err := svc.IssueRefreshToken(userID)
	require.NoError(t, err)

	got, err := svc.ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	// access token valid (belum expired) tetap ditolak karena type tag-nya bukan "refresh"
	cfg := testConfig()
	// samakan secret supaya signature lolos dan yang diuji murni type tag
	cfg.JWTSecret = cfg.JWTRefreshSecret
	svc := NewTokenService(cfg)

	user := &userModel.UserModel{ID: uuid.New(), Role: "student"}
	raw, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenWrongSecret(t *testing.T) {
	svc := NewTokenService(testConfig())
	raw, err := svc.IssueRefreshToken(uuid.New())
	require.NoError(t, err)

	other := NewTokenService(&configs.Config{
		JWTRefreshSecret: "some-other-secret",
		RefreshTokenTTL:  24 * time.Hour,
	})
	_, err = other.ParseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshTokenTTL = -time.Minute
	svc := NewTokenService(cfg)

	raw, err := svc.IssueRefreshToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRefreshTokenGarbage(t *testing.T) {
	svc := NewTokenService(testConfig())
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ParseRefreshToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, otp)
	}
}
