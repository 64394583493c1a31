package dto

import (
	"time"

	attendanceModel "lmsku_backend/internals/features/lms/attendance/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RecordAttendanceRequest — satu student, satu tanggal.
type RecordAttendanceRequest struct {
	CourseID  string  `json:"course_id" validate:"required,uuid"`
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required"` // YYYY-MM-DD
	Status    string  `json:"status" validate:"required,oneof=Present Absent Late Excused"`
	Time      *string `json:"time"`
	Note      *string `json:"note"`
}

// BulkRecordEntry — satu baris di bulk-record.
type BulkRecordEntry struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Status    string  `json:"status" validate:"required,oneof=Present Absent Late Excused"`
	Time      *string `json:"time"`
	Note      *string `json:"note"`
}

// BulkRecordRequest — satu course, satu tanggal, banyak student.
// Student yang tidak terdaftar dilewati tanpa menggagalkan sisanya.
type BulkRecordRequest struct {
	CourseID string            `json:"course_id" validate:"required,uuid"`
	Date     string            `json:"date" validate:"required"`
	Records  []BulkRecordEntry `json:"records" validate:"required,min=1,dive"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// AttendanceRecordResponse — record + nama untuk tampilan list.
type AttendanceRecordResponse struct {
	attendanceModel.AttendanceModel
	StudentName string `json:"student_name,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
}

// ParseDate — tanggal kehadiran selalu YYYY-MM-DD.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}
