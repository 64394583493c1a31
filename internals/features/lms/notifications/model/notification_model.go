package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipe notifikasi yang dikenal.
const (
	TypeAssignment   = "assignment"
	TypeMaterial     = "material"
	TypeAnnouncement = "announcement"
	TypeGrade        = "grade"
	TypeFeedback     = "feedback"
	TypeCertificate  = "certificate"
	TypeSubmission   = "submission"
)

// NotificationModel — satu baris per penerima; fan-out membuat N baris.
// Metadata menampung payload bebas per tipe (assignment_id, score, dst.)
// sebagai JSONB.
type NotificationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    *uuid.UUID     `gorm:"type:uuid" json:"sender_id"`
	CourseID    *uuid.UUID     `gorm:"type:uuid;index" json:"course_id"`
	Title       string         `gorm:"size:150;not null" json:"title"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	Type        string         `gorm:"size:20;not null" json:"type"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	Read        bool           `gorm:"not null;default:false;index" json:"read"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
