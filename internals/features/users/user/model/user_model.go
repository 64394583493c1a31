package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Role bersifat immutable setelah signup — tidak ada endpoint yang
// mengubahnya; nonaktifkan akun lewat is_active (soft disable).
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string    `gorm:"size:50;not null" json:"username"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	GoogleID    *string   `gorm:"size:255;uniqueIndex" json:"-"`
	Role        string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
