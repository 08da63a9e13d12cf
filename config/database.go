package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"journal-db-manager/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects through the connector and stores the handle in DB.
// Failing to connect for any reason the connector does not retry is fatal.
func InitDB(connector *Connector) {
	db, err := connector.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db
	log.Println("Database connected successfully")
}

// CloseDB releases the process-wide connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	DB = nil
	return sqlDB.Close()
}

// Open makes a single connection attempt with the given credentials and
// migrates the schema for sqlite or when DB_AUTO_MIGRATE is set.
func Open(creds Credentials) (*gorm.DB, error) {
	db, err := Dial(creds)
	if err != nil {
		return nil, err
	}

	if creds.AutoMigrate || creds.Driver == DriverSQLite {
		if err := models.AutoMigrate(db); err != nil {
			closeQuietly(db)
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}
	return db, nil
}

// Dial connects without touching the schema.
func Dial(creds Credentials) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch creds.Driver {
	case DriverSQLite:
		if dir := filepath.Dir(creds.Path); dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(creds.Path)
	default:
		dialector = mysql.Open(creds.DSN())
	}

	return gorm.Open(dialector, &gorm.Config{Logger: newGormLogger()})
}

func closeQuietly(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newGormLogger() logger.Interface {
	// SQL statements are only logged when DEBUG_SQL=true.
	logLevel := logger.Warn
	if strings.ToLower(os.Getenv("DEBUG_SQL")) == "true" {
		logLevel = logger.Info
	}

	return logger.New(
		log.New(LogWriter, "\r\n", log.LstdFlags),
		logger.Config{LogLevel: logLevel},
	)
}
