package model

import (
	"time"

	"github.com/google/uuid"
)

// Status submission.
const (
	SubmissionSubmitted = "Submitted"
	SubmissionLate      = "Late"
	SubmissionGraded    = "Graded"
)

// AssignmentModel — tugas per course. CourseName didenormalisasi supaya
// list tugas tidak perlu join courses.
type AssignmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	CourseName     string    `gorm:"size:150;not null" json:"courseName"`
	TeacherID      uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Title          string    `gorm:"size:150;not null" json:"title"`
	Description    *string   `gorm:"type:text" json:"description"`
	Deadline       time.Time `gorm:"not null" json:"deadline"`
	AttachmentFile *string   `gorm:"size:255" json:"attachmentFile"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// SubmissionModel — satu submission per (assignment, student); kiriman
// ulang ditolak lewat unique index komposit.
type SubmissionModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssignmentID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_assignment_student" json:"assignment_id"`
	StudentID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_assignment_student;index" json:"student_id"`
	SubmissionFile *string    `gorm:"size:255" json:"submission_file"`
	SubmissionText *string    `gorm:"type:text" json:"submission_text"`
	SubmittedAt    time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	Status         string     `gorm:"size:15;not null;default:'Submitted'" json:"status"`
	Score          *float64   `json:"score"`
	Feedback       *string    `gorm:"type:text" json:"feedback"`
	GradedAt       *time.Time `json:"graded_at"`
}

func (SubmissionModel) TableName() string {
	return "assignment_submissions"
}
