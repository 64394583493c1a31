package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel — satu baris per permintaan OTP reset password.
// Baris dihapus setelah reset sukses; sisa baris kedaluwarsa dibiarkan
// (dibatasi TTL 15 menit lewat kolom expires_at).
type PasswordResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	OTP       string    `gorm:"size:6;not null" json:"-"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordResetModel) TableName() string {
	return "password_resets"
}
