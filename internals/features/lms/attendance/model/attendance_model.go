package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel — satu baris per (course, student, tanggal); record
// ulang pada hari yang sama menimpa status lama (upsert), bukan duplikat.
type AttendanceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_course_student_date" json:"course_id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_course_student_date;index" json:"student_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_course_student_date" json:"date"`
	Status     string    `gorm:"size:10;not null" json:"status"` // Present, Absent, Late, Excused
	Time       *string   `gorm:"size:10" json:"time"`
	Note       *string   `gorm:"size:255" json:"note"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null" json:"recorded_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
