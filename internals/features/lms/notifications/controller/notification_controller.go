// internals/features/lms/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
	helper "lmsku_backend/internals/helpers"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ========================== LIST ==========================
// GET /api/notifications — milik user login, terbaru dulu, plus
// jumlah yang belum dibaca.
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var notifications []notificationModel.NotificationModel
	if err := ctrl.DB.Where("recipient_id = ?", userID).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// ========================== MARK READ ==========================
// POST /api/notifications/mark-read/:notification_id — hanya pemilik.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notificationID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notification notificationModel.NotificationModel
	if err := ctrl.DB.Where("id = ? AND recipient_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found or doesn't belong to you")
	}

	if err := ctrl.DB.Model(&notification).Update("read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	return helper.JsonOK(c, "Notification marked as read", nil)
}

// ========================== MARK ALL READ ==========================
// POST /api/notifications/mark-all-read
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("recipient_id = ?", userID).
		Update("read", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonOK(c, "All notifications marked as read", nil)
}

// ========================== DELETE ==========================
// DELETE /api/notifications/:notification_id — hanya pemilik.
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notificationID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notification notificationModel.NotificationModel
	if err := ctrl.DB.Where("id = ? AND recipient_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found or doesn't belong to you")
	}

	if err := ctrl.DB.Delete(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	return helper.JsonDeleted(c, "Notification deleted successfully", nil)
}
