package dto

import (
	"strings"
	"time"

	courseModel "lmsku_backend/internals/features/lms/courses/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateCourseRequest — multipart form (thumbnail diproses terpisah).
type CreateCourseRequest struct {
	CourseName     string  `form:"courseName" validate:"required,max=150"`
	CourseCode     string  `form:"courseCode" validate:"required,max=30"`
	Description    string  `form:"description" validate:"required"`
	Category       string  `form:"category" validate:"required,max=80"`
	Duration       int     `form:"duration" validate:"required,min=1"`
	Price          float64 `form:"price" validate:"min=0"`
	MaxStudents    int     `form:"maxStudents" validate:"required,min=1"`
	Difficulty     string  `form:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	InstructorName string  `form:"instructorName" validate:"required,max=100"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.CourseCode = strings.ToUpper(strings.TrimSpace(r.CourseCode))
	r.Category = strings.TrimSpace(r.Category)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.InstructorName = strings.TrimSpace(r.InstructorName)
}

func (r *CreateCourseRequest) ToModel() *courseModel.CourseModel {
	return &courseModel.CourseModel{
		CourseName:       r.CourseName,
		CourseCode:       r.CourseCode,
		Description:      r.Description,
		Category:         r.Category,
		Duration:         r.Duration,
		Price:            r.Price,
		MaxStudents:      r.MaxStudents,
		Difficulty:       r.Difficulty,
		InstructorName:   r.InstructorName,
		EnrollmentStatus: courseModel.EnrollmentOpen,
	}
}

// UpdateCourseRequest — partial update; semua pointer.
type UpdateCourseRequest struct {
	CourseName       *string  `json:"courseName,omitempty" validate:"omitempty,max=150"`
	Description      *string  `json:"description,omitempty"`
	Category         *string  `json:"category,omitempty" validate:"omitempty,max=80"`
	Duration         *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	MaxStudents      *int     `json:"maxStudents,omitempty" validate:"omitempty,min=1"`
	Difficulty       *string  `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	InstructorName   *string  `json:"instructorName,omitempty" validate:"omitempty,max=100"`
	EnrollmentStatus *string  `json:"enrollmentStatus,omitempty" validate:"omitempty,oneof=Open Closed Full"`
}

// CreateModuleRequest — form, order tidak pernah dari client.
type CreateModuleRequest struct {
	Title       string  `form:"title" validate:"required,max=150"`
	Description *string `form:"description"`
}

// CreateLessonRequest — form, material file diproses terpisah.
type CreateLessonRequest struct {
	Title        string  `form:"title" validate:"required,max=150"`
	Duration     string  `form:"duration" validate:"required,max=30"`
	Description  *string `form:"description"`
	MaterialType *string `form:"materialType" validate:"omitempty,oneof=video pdf link file none"`
	MaterialURL  *string `form:"materialUrl"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// CourseResponse — model + agregat yang dihitung saat dibaca.
// studentsEnrolled selalu hasil COUNT, bukan kolom.
type CourseResponse struct {
	courseModel.CourseModel
	StudentsEnrolled int64 `json:"studentsEnrolled"`
	Progress         *int  `json:"progress,omitempty"` // hanya di list enrolled
}

func ToCourseResponse(c *courseModel.CourseModel, enrolled int64) CourseResponse {
	return CourseResponse{CourseModel: *c, StudentsEnrolled: enrolled}
}

// ModuleResponse — module + lesson-nya, urut berdasarkan order.
type ModuleResponse struct {
	courseModel.CourseModuleModel
	Lessons []courseModel.LessonModel `json:"lessons"`
}

// CourseStudentResponse — satu student pada daftar peserta course,
// lengkap dengan agregat kehadiran & nilai (dibulatkan ke integer).
type CourseStudentResponse struct {
	ID             string    `json:"id"`
	UserName       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Progress       int       `json:"progress"`
	Status         string    `json:"status"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Attendance     float64   `json:"attendance"`
	Performance    float64   `json:"performance"`
}
