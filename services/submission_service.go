package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"journal-db-manager/config"
	"journal-db-manager/models"

	"gorm.io/gorm"
)

type SubmitInput struct {
	Title            string
	Affiliation      string
	ICode            int
	SecondaryAuthors []string
	Document         string
}

type SubmissionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	if db == nil {
		db = config.DB
	}
	return &SubmissionService{db: db, now: time.Now}
}

// ReadDocument checks that path names a readable regular file and returns its text.
func ReadDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrDocumentUnreadable, path)
		}
		return "", fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrDocumentUnreadable, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	return string(data), nil
}

// Submit stores a new manuscript for the author with status submitted, then
// its secondary authors at priority 1..N in the order given.
func (s *SubmissionService) Submit(ctx context.Context, authorID int, input SubmitInput) (*models.Manuscript, error) {
	if len(input.SecondaryAuthors) > models.MaxSecondaryAuthors {
		return nil, fmt.Errorf("%w: %d given, at most %d allowed",
			ErrTooManySecondaryAuthors, len(input.SecondaryAuthors), models.MaxSecondaryAuthors)
	}

	db := s.db.WithContext(ctx)

	if input.Affiliation != "" {
		res := db.Model(&models.Author{}).
			Where("author_id = ? AND (affiliation IS NULL OR affiliation <> ?)", authorID, input.Affiliation).
			Update("affiliation", input.Affiliation)
		if res.Error != nil {
			return nil, fmt.Errorf("update affiliation for author %d: %w", authorID, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("[submit] author %d affiliation set to %q", authorID, input.Affiliation)
		}
	}

	now := s.now()
	manuscript := models.Manuscript{
		Title:             input.Title,
		Document:          input.Document,
		Status:            models.StatusSubmitted,
		AuthorID:          authorID,
		ICode:             input.ICode,
		DateReceived:      now,
		StatusLastUpdated: now,
	}
	if err := db.Create(&manuscript).Error; err != nil {
		return nil, fmt.Errorf("insert manuscript: %w", err)
	}

	for i, name := range input.SecondaryAuthors {
		row := models.SecondaryAuthor{
			ManuscriptID: manuscript.ManuscriptID,
			Priority:     i + 1,
			Name:         name,
		}
		if err := db.Create(&row).Error; err != nil {
			return &manuscript, fmt.Errorf("insert secondary author %d for manuscript %d: %w", row.Priority, manuscript.ManuscriptID, err)
		}
		manuscript.SecondaryAuthors = append(manuscript.SecondaryAuthors, row)
	}

	log.Printf("[submit] author=%d manuscript=%d secondary_authors=%d", authorID, manuscript.ManuscriptID, len(input.SecondaryAuthors))
	return &manuscript, nil
}
