package services

import (
	"path/filepath"
	"testing"
	"time"

	"journal-db-manager/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}

func seedManuscript(t *testing.T, db *gorm.DB, authorID int, status models.ManuscriptStatus) models.Manuscript {
	t.Helper()
	now := time.Now()
	m := models.Manuscript{
		Title:             "Seeded paper",
		Document:          "body",
		Status:            status,
		AuthorID:          authorID,
		ICode:             7,
		DateReceived:      now,
		StatusLastUpdated: now,
	}
	mustCreate(t, db, &m)
	return m
}

func seedReview(t *testing.T, db *gorm.DB, manuscriptID, reviewerID int) {
	t.Helper()
	sent := time.Now().Add(-24 * time.Hour)
	mustCreate(t, db, &models.Review{ManuscriptID: manuscriptID, ReviewerID: reviewerID, DateSent: &sent})
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}
