package model

import (
	"time"

	"github.com/google/uuid"
)

// Status pendaftaran course.
const (
	EnrollmentOpen   = "Open"
	EnrollmentClosed = "Closed"
	EnrollmentFull   = "Full"
)

// CourseModel — tabel courses.
// JSON key sengaja camelCase (courseName dst.) mengikuti kontrak
// frontend yang sudah jalan; field lain tetap snake_case.
//
// Jumlah student TIDAK disimpan sebagai kolom counter — selalu dihitung
// via COUNT saat dibaca, lalu ditempel di DTO sebagai studentsEnrolled.
type CourseModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID              uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	CourseName             string    `gorm:"size:150;not null" json:"courseName"`
	CourseCode             string    `gorm:"size:30;uniqueIndex;not null" json:"courseCode"`
	Description            string    `gorm:"type:text;not null" json:"description"`
	Category               string    `gorm:"size:80;not null" json:"category"`
	Duration               int       `gorm:"not null" json:"duration"` // dalam minggu
	Price                  float64   `gorm:"not null;default:0" json:"price"`
	MaxStudents            int       `gorm:"not null" json:"maxStudents"`
	Difficulty             string    `gorm:"size:20;not null;default:'beginner'" json:"difficulty"`
	InstructorName         string    `gorm:"size:100;not null" json:"instructorName"`
	Thumbnail              *string   `gorm:"size:255" json:"thumbnail"`
	EnrollmentStatus       string    `gorm:"size:10;not null;default:'Open'" json:"enrollmentStatus"`
	HasModules             bool      `gorm:"not null;default:false" json:"hasModules"`
	CertificateOffered     bool      `gorm:"not null;default:false" json:"certificateOffered"`
	CertificateTitle       *string   `gorm:"size:150" json:"certificateTitle"`
	CertificateDescription *string   `gorm:"type:text" json:"certificateDescription"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
