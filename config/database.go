package config

import (
	"fmt"
	"time"

	"DocTrackerGo/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the gorm connection for the mysql and sqlite drivers.
func InitDB(config Config) error {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case DriverMySQL:
		dialector = mysql.Open(config.GetDBConnString())
	case DriverSQLite:
		dialector = sqlite.Open(config.SQLitePath)
	default:
		return fmt.Errorf("InitDB does not handle driver %q", config.DBDriver)
	}

	logLevel := logger.Warn
	if config.Environment == "development" {
		logLevel = logger.Info
	}

	db, err := OpenGorm(dialector, logLevel)
	if err != nil {
		return err
	}
	DB = db

	if config.DBDriver == DriverMySQL {
		// connection pool
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return nil
}

// OpenGorm opens a database with the settings the stores rely on: translated
// duplicate-key errors and UTC timestamps.
func OpenGorm(dialector gorm.Dialector, logLevel logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// MigrateDB creates or updates the users and entries tables.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Entry{},
	)
	if err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}
