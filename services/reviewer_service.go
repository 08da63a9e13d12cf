package services

import (
	"context"
	"fmt"
	"log"

	"journal-db-manager/config"
	"journal-db-manager/models"

	"gorm.io/gorm"
)

type ReviewerService struct {
	db *gorm.DB
}

func NewReviewerService(db *gorm.DB) *ReviewerService {
	if db == nil {
		db = config.DB
	}
	return &ReviewerService{db: db}
}

// Resign removes the reviewer's expertise rows, login mapping and reviewer
// record, in that order. It stops at the first failing statement; rows already
// deleted stay deleted.
func (s *ReviewerService) Resign(ctx context.Context, reviewerID int) error {
	db := s.db.WithContext(ctx)

	if err := db.Where("reviewer_id = ?", reviewerID).Delete(&models.ReviewerExpertise{}).Error; err != nil {
		return fmt.Errorf("delete expertise for reviewer %d: %w", reviewerID, err)
	}
	if err := db.Where("role_id = ? AND role_type = ?", reviewerID, models.RoleReviewer).Delete(&models.LoginToRole{}).Error; err != nil {
		return fmt.Errorf("delete login mapping for reviewer %d: %w", reviewerID, err)
	}
	res := db.Where("reviewer_id = ?", reviewerID).Delete(&models.Reviewer{})
	if res.Error != nil {
		return fmt.Errorf("delete reviewer %d: %w", reviewerID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("[resign] reviewer %d had no reviewer row", reviewerID)
	}

	log.Printf("[resign] reviewer %d resigned", reviewerID)
	return nil
}

// Expertise returns the ICodes recorded for a reviewer.
func (s *ReviewerService) Expertise(ctx context.Context, reviewerID int) ([]int, error) {
	var codes []int
	err := s.db.WithContext(ctx).
		Model(&models.ReviewerExpertise{}).
		Where("reviewer_id = ?", reviewerID).
		Order("icode").
		Pluck("icode", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("load expertise for reviewer %d: %w", reviewerID, err)
	}
	return codes, nil
}
