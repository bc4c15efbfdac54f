package db

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/config"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

// NewDB opens the embedded database file and migrates the schema. The
// handle lives for the whole process; Close releases it on shutdown.
func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	// single local file, single writer
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Professional{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Close(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("failed to get sql.DB on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
}
