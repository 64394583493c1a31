package model

import (
	"time"

	"github.com/google/uuid"
)

// =======================================================
// PROFILE MODELS — satu baris per user, dibuat saat signup
// (atau lazy saat pertama kali diakses untuk user lama).
// =======================================================

type StudentProfileModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName       string     `gorm:"size:100" json:"full_name"`
	Bio            *string    `gorm:"type:text" json:"bio"`
	ProfilePicture *string    `gorm:"size:255" json:"profile_picture"`
	Phone          *string    `gorm:"size:30" json:"phone"`
	Address        *string    `gorm:"size:255" json:"address"`
	StudentID      string     `gorm:"size:20" json:"student_id"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

type TeacherProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName       string    `gorm:"size:100" json:"full_name"`
	Bio            *string   `gorm:"type:text" json:"bio"`
	ProfilePicture *string   `gorm:"size:255" json:"profile_picture"`
	Phone          *string   `gorm:"size:30" json:"phone"`
	Address        *string   `gorm:"size:255" json:"address"`
	Department     *string   `gorm:"size:100" json:"department"`
	Position       *string   `gorm:"size:100" json:"position"`
	Office         *string   `gorm:"size:100" json:"office"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}
