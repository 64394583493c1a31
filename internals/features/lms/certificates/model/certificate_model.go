package model

import (
	"time"

	"github.com/google/uuid"
)

// Status sertifikat terbit.
const (
	CertificateAvailable = "Available"
	CertificatePending   = "Pending"
)

// CertificateModel — template sertifikat; maksimal satu per course.
type CertificateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"course_id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Template    *string   `gorm:"size:255" json:"template"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

// StudentCertificateModel — sertifikat yang diterbitkan ke student;
// satu per (template, student), credential_id unik global.
type StudentCertificateModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CertificateID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_certificate" json:"certificate_id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_certificate;index" json:"student_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	IssueDate      time.Time `gorm:"autoCreateTime" json:"issue_date"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`
	CredentialID   string    `gorm:"size:50;uniqueIndex;not null" json:"credential_id"`
	CertificateURL *string   `gorm:"size:255" json:"certificate_url"`
	Status         string    `gorm:"size:15;not null;default:'Available'" json:"status"`
}

func (StudentCertificateModel) TableName() string {
	return "student_certificates"
}
