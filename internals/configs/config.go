package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung semua setting runtime. Dibangun sekali di startup
// lalu dipass ke komponen lain — jangan baca os.Getenv di luar paket ini.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	GoogleClientID string

	SendgridAPIKey string
	EmailFrom      string
	EmailFromName  string

	UploadFolder  string
	MaxUploadSize int

	CORSOrigins []string

	FirstAdminEmail    string
	FirstAdminPassword string
}

// Load membaca .env (kalau ada) lalu membangun Config immutable.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "lmsku"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		JWTSecret:        GetEnv("JWT_SECRET"),
		JWTRefreshSecret: GetEnv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:   durationEnv("ACCESS_TOKEN_TTL_MINUTES", 60*24*8) * time.Minute,
		RefreshTokenTTL:  durationEnv("REFRESH_TOKEN_TTL_MINUTES", 60*24*30) * time.Minute,

		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID"),

		SendgridAPIKey: GetEnv("SENDGRID_API_KEY"),
		EmailFrom:      GetEnv("EMAILS_FROM_EMAIL", "info@example.com"),
		EmailFromName:  GetEnv("EMAILS_FROM_NAME", "LMS System"),

		UploadFolder:  GetEnv("UPLOAD_FOLDER", "uploads"),
		MaxUploadSize: intEnv("MAX_UPLOAD_SIZE", 20*1024*1024), // 20 MB

		CORSOrigins: splitEnv("CORS_ORIGINS", "http://localhost:3000"),

		FirstAdminEmail:    GetEnv("FIRST_ADMIN_EMAIL", "admin@example.com"),
		FirstAdminPassword: GetEnv("FIRST_ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if cfg.JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_REFRESH_SECRET berhasil dimuat.")
	}
	if cfg.SendgridAPIKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY kosong — email hanya dicetak ke console")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func durationEnv(key string, defMinutes int) time.Duration {
	return time.Duration(intEnv(key, defMinutes))
}

func splitEnv(key, def string) []string {
	raw := GetEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
