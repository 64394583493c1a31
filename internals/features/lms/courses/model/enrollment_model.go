package model

import (
	"time"

	"github.com/google/uuid"
)

// Status enrollment.
const (
	EnrollmentActive    = "Active"
	EnrollmentCompleted = "Completed"
	EnrollmentDropped   = "Dropped"
)

// EnrollmentModel — satu baris per (course, student). Unique index
// komposit menjadi pagar terakhir terhadap double-enroll balapan.
type EnrollmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_course_student" json:"course_id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_course_student;index" json:"student_id"`
	EnrollmentDate time.Time `gorm:"autoCreateTime" json:"enrollment_date"`
	Progress       int       `gorm:"not null;default:0" json:"progress"`
	Status         string    `gorm:"size:15;not null;default:'Active'" json:"status"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
