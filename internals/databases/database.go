package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lmsku_backend/internals/configs"
	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
	attendanceModel "lmsku_backend/internals/features/lms/attendance/model"
	certificateModel "lmsku_backend/internals/features/lms/certificates/model"
	courseModel "lmsku_backend/internals/features/lms/courses/model"
	materialModel "lmsku_backend/internals/features/lms/materials/model"
	notificationModel "lmsku_backend/internals/features/lms/notifications/model"
	authModel "lmsku_backend/internals/features/users/auth/model"
	profileModel "lmsku_backend/internals/features/users/profiles/model"
	userModel "lmsku_backend/internals/features/users/user/model"
)

func ConnectDB(cfg *configs.Config) *gorm.DB {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=lmsku&options=-c statement_timeout=3000",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk seluruh tabel.
// Unique index komposit (enrollment, submission, attendance, sertifikat)
// ikut terpasang dari tag gorm di masing-masing model.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.PasswordResetModel{},
		&profileModel.StudentProfileModel{},
		&profileModel.TeacherProfileModel{},
		&courseModel.CourseModel{},
		&courseModel.EnrollmentModel{},
		&courseModel.CourseModuleModel{},
		&courseModel.LessonModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
		&attendanceModel.AttendanceModel{},
		&materialModel.MaterialModel{},
		&certificateModel.CertificateModel{},
		&certificateModel.StudentCertificateModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}
