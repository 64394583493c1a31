// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	assignmentRoute "lmsku_backend/internals/features/lms/assignments/route"
	attendanceRoute "lmsku_backend/internals/features/lms/attendance/route"
	certificateRoute "lmsku_backend/internals/features/lms/certificates/route"
	courseRoute "lmsku_backend/internals/features/lms/courses/route"
	materialRoute "lmsku_backend/internals/features/lms/materials/route"
	notificationRoute "lmsku_backend/internals/features/lms/notifications/route"
	authRoute "lmsku_backend/internals/features/users/auth/route"
	profileRoute "lmsku_backend/internals/features/users/profiles/route"
	userRoute "lmsku_backend/internals/features/users/user/route"
)

var startTime time.Time

// SetupRoutes memasang semua route aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db, cfg)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db, cfg)

	log.Println("[INFO] Setting up ProfileRoutes...")
	profileRoute.ProfileRoutes(api, db, cfg)

	// ===================== LMS =====================
	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(api, db, cfg)

	log.Println("[INFO] Setting up AssignmentRoutes...")
	assignmentRoute.AssignmentRoutes(api, db, cfg)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(api, db, cfg)

	log.Println("[INFO] Setting up MaterialRoutes...")
	materialRoute.MaterialRoutes(api, db, cfg)

	log.Println("[INFO] Setting up CertificateRoutes...")
	certificateRoute.CertificateRoutes(api, db, cfg)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notificationRoute.NotificationRoutes(api, db, cfg)
}
