package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipe material yang dikenal.
const (
	MaterialDocument = "document"
	MaterialVideo    = "video"
	MaterialLink     = "link"
)

// MaterialModel — bahan ajar per course; document/video menyimpan file,
// link hanya URL. AccessCount bertambah tiap kali student membuka detail.
type MaterialModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"course_id"`
	ModuleID    *uuid.UUID `gorm:"type:uuid;index" json:"module_id"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Type        string     `gorm:"size:15;not null" json:"type"`
	Description *string    `gorm:"type:text" json:"description"`
	FilePath    *string    `gorm:"size:255" json:"file_path"`
	URL         *string    `gorm:"size:255" json:"url"`
	Format      *string    `gorm:"size:15" json:"format"` // PDF, MP4, dst.
	Size        *string    `gorm:"size:20" json:"size"`
	Duration    *string    `gorm:"size:20" json:"duration"`
	UploadedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"uploaded_by"`
	AccessCount int        `gorm:"not null;default:0" json:"access_count"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}
