package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"journal-db-manager/config"
	"journal-db-manager/models"

	"gorm.io/gorm"
)

// Decision is a reviewer's verdict on a manuscript.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Status is the manuscript status the decision moves to.
func (d Decision) Status() models.ManuscriptStatus {
	if d == DecisionAccept {
		return models.StatusAccepted
	}
	return models.StatusRejected
}

// Recommendation is the score stored for the decision.
func (d Decision) Recommendation() (int, error) {
	switch d {
	case DecisionAccept:
		return models.RecommendAccept, nil
	case DecisionReject:
		return models.RecommendReject, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidDecision, d)
}

// Scores are the four component scores of a review.
type Scores struct {
	Appropriateness int
	Clarity         int
	Methodology     int
	Contribution    int
}

// ScoresFrom builds Scores from exactly four values in command order.
func ScoresFrom(values []int) (Scores, error) {
	if len(values) != 4 {
		return Scores{}, fmt.Errorf("expected 4 scores, got %d", len(values))
	}
	return Scores{
		Appropriateness: values[0],
		Clarity:         values[1],
		Methodology:     values[2],
		Contribution:    values[3],
	}, nil
}

// ReviewAssignment is one row of a reviewer's workload.
type ReviewAssignment struct {
	ManuscriptID         int                     `gorm:"column:manuscript_id"`
	Title                string                  `gorm:"column:title"`
	Status               models.ManuscriptStatus `gorm:"column:status"`
	DateSent             *time.Time              `gorm:"column:date_sent"`
	DateFeedbackReceived *time.Time              `gorm:"column:date_feedback_received"`
	Recommendation       *int                    `gorm:"column:recommendation"`
}

type ReviewService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReviewService(db *gorm.DB) *ReviewService {
	if db == nil {
		db = config.DB
	}
	return &ReviewService{db: db, now: time.Now}
}

// Assignments lists every manuscript the reviewer has a review row for.
func (s *ReviewService) Assignments(ctx context.Context, reviewerID int) ([]ReviewAssignment, error) {
	var rows []ReviewAssignment
	err := s.db.WithContext(ctx).
		Table("review AS r").
		Select("r.manuscript_id, m.title, m.status, r.date_sent, r.date_feedback_received, r.recommendation").
		Joins("JOIN manuscript AS m ON m.manuscript_id = r.manuscript_id").
		Where("r.reviewer_id = ?", reviewerID).
		Order("r.manuscript_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load assignments for reviewer %d: %w", reviewerID, err)
	}
	return rows, nil
}

// Decide records the reviewer's feedback and moves the manuscript to accepted or
// rejected. The manuscript must exist, be under review, and already have a
// review row for this reviewer; each failure has its own error. Each statement
// commits on its own.
func (s *ReviewService) Decide(ctx context.Context, reviewerID, manuscriptID int, decision Decision, scores Scores) error {
	recommendation, err := decision.Recommendation()
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)

	var manuscript models.Manuscript
	if err := db.Select("manuscript_id", "status").
		Where("manuscript_id = ?", manuscriptID).
		First(&manuscript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrManuscriptNotFound
		}
		return fmt.Errorf("lookup manuscript %d: %w", manuscriptID, err)
	}
	if manuscript.Status.Terminal() {
		return fmt.Errorf("%w (already %s)", ErrManuscriptNotUnderReview, manuscript.Status)
	}
	if manuscript.Status != models.StatusUnderReview {
		return fmt.Errorf("%w (status: %s)", ErrManuscriptNotUnderReview, manuscript.Status)
	}

	var review models.Review
	if err := db.Where("manuscript_id = ? AND reviewer_id = ?", manuscriptID, reviewerID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewerNotAssigned
		}
		return fmt.Errorf("lookup review %d/%d: %w", manuscriptID, reviewerID, err)
	}

	now := s.now()
	res := db.Model(&models.Review{}).
		Where("manuscript_id = ? AND reviewer_id = ?", manuscriptID, reviewerID).
		Updates(map[string]interface{}{
			"appropriateness":        scores.Appropriateness,
			"clarity":                scores.Clarity,
			"methodology":            scores.Methodology,
			"contribution":           scores.Contribution,
			"recommendation":         recommendation,
			"date_feedback_received": now,
		})
	if res.Error != nil {
		return fmt.Errorf("record %s for manuscript %d: %w", decision, manuscriptID, res.Error)
	}

	// Terminal states are never left.
	res = db.Model(&models.Manuscript{}).
		Where("manuscript_id = ? AND status = ?", manuscriptID, models.StatusUnderReview).
		Updates(map[string]interface{}{
			"status":              decision.Status(),
			"status_last_updated": now,
		})
	if res.Error != nil {
		return fmt.Errorf("update status of manuscript %d: %w", manuscriptID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w (status changed during decision)", ErrManuscriptNotUnderReview)
	}

	log.Printf("[review] reviewer=%d manuscript=%d decision=%s scores=%+v", reviewerID, manuscriptID, decision, scores)
	return nil
}
