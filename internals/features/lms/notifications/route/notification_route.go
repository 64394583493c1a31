// internals/features/lms/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	notificationController "lmsku_backend/internals/features/lms/notifications/controller"
	authMiddleware "lmsku_backend/internals/middlewares/auth"
)

// NotificationRoutes — semua role login; kepemilikan dicek di controller.
func NotificationRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := api.Group("/notifications", authMiddleware.AuthMiddleware(db, cfg))

	notifications.Get("/", ctrl.GetNotifications)
	notifications.Post("/mark-read/:notification_id", ctrl.MarkRead)
	notifications.Post("/mark-all-read", ctrl.MarkAllRead)
	notifications.Delete("/:notification_id", ctrl.DeleteNotification)
}
