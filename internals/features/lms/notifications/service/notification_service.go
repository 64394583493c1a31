// internals/features/lms/notifications/service/notification_service.go
package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "lmsku_backend/internals/features/lms/courses/model"
	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
)

// NotificationService — fan-out notifikasi in-app. Kegagalan insert
// HANYA dilog, tidak pernah menggagalkan operasi pemicunya: tugas yang
// sudah dibuat tidak boleh batal gara-gara notifikasi.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func marshalMetadata(metadata map[string]interface{}) datatypes.JSON {
	if metadata == nil {
		return nil
	}
	raw, err := sonic.Marshal(metadata)
	if err != nil {
		log.Printf("[WARN] gagal marshal metadata notifikasi: %v", err)
		return nil
	}
	return datatypes.JSON(raw)
}

// NotifyUser mengirim satu notifikasi ke satu penerima.
func (s *NotificationService) NotifyUser(
	recipientID uuid.UUID,
	senderID *uuid.UUID,
	courseID *uuid.UUID,
	title, message, notifType string,
	metadata map[string]interface{},
) {
	n := notificationModel.NotificationModel{
		RecipientID: recipientID,
		SenderID:    senderID,
		CourseID:    courseID,
		Title:       title,
		Message:     message,
		Type:        notifType,
		Metadata:    marshalMetadata(metadata),
	}
	if err := s.DB.Create(&n).Error; err != nil {
		log.Printf("[WARN] gagal kirim notifikasi ke %s: %v", recipientID, err)
	}
}

// NotifyEnrolledStudents fan-out ke semua student yang terdaftar di
// course; satu baris notifikasi per student, insert batch sekali jalan.
func (s *NotificationService) NotifyEnrolledStudents(
	courseID uuid.UUID,
	senderID *uuid.UUID,
	title, message, notifType string,
	metadata map[string]interface{},
) {
	var studentIDs []uuid.UUID
	err := s.DB.Model(&courseModel.EnrollmentModel{}).
		Where("course_id = ?", courseID).
		Pluck("student_id", &studentIDs).Error
	if err != nil {
		log.Printf("[WARN] gagal ambil daftar enrollment course %s: %v", courseID, err)
		return
	}
	if len(studentIDs) == 0 {
		return
	}

	meta := marshalMetadata(metadata)
	rows := make([]notificationModel.NotificationModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		cid := courseID
		rows = append(rows, notificationModel.NotificationModel{
			RecipientID: sid,
			SenderID:    senderID,
			CourseID:    &cid,
			Title:       title,
			Message:     message,
			Type:        notifType,
			Metadata:    meta,
		})
	}
	if err := s.DB.Create(&rows).Error; err != nil {
		log.Printf("[WARN] gagal fan-out notifikasi course %s (%d penerima): %v",
			courseID, len(studentIDs), err)
	}
}
