package services

import (
	"context"
	"fmt"
	"time"

	"journal-db-manager/config"
	"journal-db-manager/models"

	"gorm.io/gorm"
)

// ManuscriptStatusRow is one line of an author's status listing.
type ManuscriptStatusRow struct {
	ManuscriptID      int                     `gorm:"column:manuscript_id"`
	Title             string                  `gorm:"column:title"`
	DateReceived      time.Time               `gorm:"column:date_received"`
	Status            models.ManuscriptStatus `gorm:"column:status"`
	StatusLastUpdated time.Time               `gorm:"column:status_last_updated"`
}

type ManuscriptStatusService struct {
	db *gorm.DB
}

func NewManuscriptStatusService(db *gorm.DB) *ManuscriptStatusService {
	if db == nil {
		db = config.DB
	}
	return &ManuscriptStatusService{db: db}
}

// ForAuthor lists the author's own manuscripts, oldest first.
func (s *ManuscriptStatusService) ForAuthor(ctx context.Context, authorID int) ([]ManuscriptStatusRow, error) {
	var rows []ManuscriptStatusRow
	err := s.db.WithContext(ctx).
		Model(&models.Manuscript{}).
		Select("manuscript_id, title, date_received, status, status_last_updated").
		Where("primary_author_id = ?", authorID).
		Order("manuscript_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load manuscripts for author %d: %w", authorID, err)
	}
	return rows, nil
}

// ForEditor is not implemented.
func (s *ManuscriptStatusService) ForEditor(ctx context.Context, editorID int) ([]ManuscriptStatusRow, error) {
	return nil, ErrEditorStatusNotImplemented
}
