// internals/features/lms/courses/service/enrollment_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "lmsku_backend/internals/features/lms/courses/model"
	helper "lmsku_backend/internals/helpers"
)

// Error hasil keputusan enroll — controller yang memetakan ke HTTP.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrCourseFull      = errors.New("course is full")
	ErrCourseClosed    = errors.New("course is not open for enrollment")
)

// CanEnroll — keputusan kapasitas murni: muat selama jumlah terdaftar
// saat ini masih di bawah kuota.
func CanEnroll(enrolled int64, maxStudents int) bool {
	return enrolled < int64(maxStudents)
}

// EnrollmentService menangani pendaftaran student ke course.
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll mendaftarkan student dalam satu transaksi:
// baris course dikunci (SELECT ... FOR UPDATE), kapasitas dihitung via
// COUNT terhadap enrollments — tidak ada kolom counter yang bisa drift.
// Unique index (course_id, student_id) jadi pagar terakhir kalau dua
// request lolos pengecekan bersamaan; 23505 dipetakan ke ErrAlreadyEnrolled.
func (s *EnrollmentService) Enroll(courseID, studentID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var course courseModel.CourseModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&course, "id = ?", courseID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		} else if err != nil {
			return err
		}

		if course.EnrollmentStatus != courseModel.EnrollmentOpen {
			return ErrCourseClosed
		}

		var existing int64
		if err := tx.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ? AND student_id = ?", courseID, studentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyEnrolled
		}

		var enrolled int64
		if err := tx.Model(&courseModel.EnrollmentModel{}).
			Where("course_id = ?", courseID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if !CanEnroll(enrolled, course.MaxStudents) {
			return ErrCourseFull
		}

		enrollment := courseModel.EnrollmentModel{
			CourseID:  courseID,
			StudentID: studentID,
			Progress:  0,
			Status:    courseModel.EnrollmentActive,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return ErrAlreadyEnrolled
			}
			return err
		}
		return nil
	})
}

// CountEnrolled — jumlah student terdaftar, dihitung saat dibaca.
func (s *EnrollmentService) CountEnrolled(courseID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ?", courseID).
		Count(&n).Error
	return n, err
}

// IsEnrolled — apakah student terdaftar di course.
func (s *EnrollmentService) IsEnrolled(courseID, studentID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&n).Error
	return n > 0, err
}
