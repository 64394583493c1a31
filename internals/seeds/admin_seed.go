// file: internals/seeds/admin_seed.go
package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	"lmsku_backend/internals/constants"
	userModel "lmsku_backend/internals/features/users/user/model"
)

// SeedFirstAdmin membuat superuser pertama dari ENV. Idempotent:
// kalau email sudah terdaftar, tidak melakukan apa-apa.
func SeedFirstAdmin(db *gorm.DB, cfg *configs.Config) {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		log.Println("⚠️ FIRST_ADMIN_EMAIL / FIRST_ADMIN_PASSWORD kosong — skip seed admin")
		return
	}

	var existing userModel.UserModel
	err := db.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️ Admin '%s' sudah ada, dilewati.", cfg.FirstAdminEmail)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Gagal cek admin pertama: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.FirstAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:    "admin",
		Email:       cfg.FirstAdminEmail,
		Password:    string(hashed),
		Role:        constants.RoleAdmin,
		IsActive:    true,
		IsSuperuser: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal membuat admin pertama: %v", err)
		return
	}
	log.Printf("✅ Admin pertama '%s' berhasil dibuat.", cfg.FirstAdminEmail)
}
