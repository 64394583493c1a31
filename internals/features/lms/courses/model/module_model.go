package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModuleModel — bab dalam sebuah course; order mulai dari 1 dan
// di-assign di dalam transaksi insert (max+1), tidak pernah dari client.
type CourseModuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Order       int       `gorm:"column:module_order;not null" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}

// LessonModel — materi per pertemuan di dalam module. Penghapusan lesson
// TIDAK menata ulang order lesson lain; urutan boleh berlubang.
type LessonModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ModuleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"module_id"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	Duration     string    `gorm:"size:30" json:"duration"`
	MaterialType *string   `gorm:"size:20" json:"materialType"` // video, pdf, link, none
	MaterialURL  *string   `gorm:"size:255" json:"materialUrl"`
	MaterialFile *string   `gorm:"size:255" json:"materialFile"`
	Order        int       `gorm:"column:lesson_order;not null" json:"order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
