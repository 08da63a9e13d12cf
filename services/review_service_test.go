package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"journal-db-manager/models"

	"gorm.io/gorm"
)

var testScores = Scores{Appropriateness: 8, Clarity: 7, Methodology: 6, Contribution: 9}

func TestDecideRecordsAcceptFeedback(t *testing.T) {
	db := newTestDB(t)
	m := seedManuscript(t, db, 1, models.StatusUnderReview)
	seedReview(t, db, m.ManuscriptID, 5)

	fixed := time.Date(2022, 10, 29, 12, 0, 0, 0, time.UTC)
	svc := NewReviewService(db)
	svc.now = func() time.Time { return fixed }

	if err := svc.Decide(context.Background(), 5, m.ManuscriptID, DecisionAccept, testScores); err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}

	var review models.Review
	if err := db.First(&review, "manuscript_id = ? AND reviewer_id = ?", m.ManuscriptID, 5).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	if review.Recommendation == nil || *review.Recommendation != models.RecommendAccept {
		t.Fatalf("expected recommendation 10, got %v", review.Recommendation)
	}
	if review.Appropriateness == nil || *review.Appropriateness != 8 ||
		review.Clarity == nil || *review.Clarity != 7 ||
		review.Methodology == nil || *review.Methodology != 6 ||
		review.Contribution == nil || *review.Contribution != 9 {
		t.Fatalf("scores not stored: %+v", review)
	}
	if review.DateFeedbackReceived == nil || !review.DateFeedbackReceived.Equal(fixed) {
		t.Fatalf("expected feedback date %v, got %v", fixed, review.DateFeedbackReceived)
	}

	got := loadManuscript(t, db, m.ManuscriptID)
	if got.Status != models.StatusAccepted {
		t.Fatalf("expected status %s, got %s", models.StatusAccepted, got.Status)
	}
	if !got.StatusLastUpdated.Equal(fixed) {
		t.Fatalf("expected status_last_updated %v, got %v", fixed, got.StatusLastUpdated)
	}
}

func TestDecideRejectStoresZeroRecommendation(t *testing.T) {
	db := newTestDB(t)
	m := seedManuscript(t, db, 1, models.StatusUnderReview)
	seedReview(t, db, m.ManuscriptID, 5)

	if err := NewReviewService(db).Decide(context.Background(), 5, m.ManuscriptID, DecisionReject, testScores); err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}

	var review models.Review
	if err := db.First(&review, "manuscript_id = ? AND reviewer_id = ?", m.ManuscriptID, 5).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	if review.Recommendation == nil || *review.Recommendation != models.RecommendReject {
		t.Fatalf("expected recommendation 0, got %v", review.Recommendation)
	}
	if got := loadManuscript(t, db, m.ManuscriptID); got.Status != models.StatusRejected {
		t.Fatalf("expected status %s, got %s", models.StatusRejected, got.Status)
	}
}

func TestDecideCannotLeaveTerminalStatus(t *testing.T) {
	db := newTestDB(t)
	m := seedManuscript(t, db, 1, models.StatusUnderReview)
	seedReview(t, db, m.ManuscriptID, 5)
	seedReview(t, db, m.ManuscriptID, 6)
	svc := NewReviewService(db)

	if err := svc.Decide(context.Background(), 5, m.ManuscriptID, DecisionAccept, testScores); err != nil {
		t.Fatalf("first decision returned error: %v", err)
	}
	for _, reviewerID := range []int{5, 6} {
		err := svc.Decide(context.Background(), reviewerID, m.ManuscriptID, DecisionReject, testScores)
		if !errors.Is(err, ErrManuscriptNotUnderReview) {
			t.Fatalf("reviewer %d: expected ErrManuscriptNotUnderReview, got %v", reviewerID, err)
		}
	}

	if got := loadManuscript(t, db, m.ManuscriptID); got.Status != models.StatusAccepted {
		t.Fatalf("expected status to stay %s, got %s", models.StatusAccepted, got.Status)
	}
	var untouched models.Review
	if err := db.First(&untouched, "manuscript_id = ? AND reviewer_id = ?", m.ManuscriptID, 6).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	if untouched.Recommendation != nil {
		t.Fatalf("second reviewer's row should be untouched, got %+v", untouched)
	}
}

func TestDecisionStatus(t *testing.T) {
	for decision, want := range map[Decision]models.ManuscriptStatus{
		DecisionAccept: models.StatusAccepted,
		DecisionReject: models.StatusRejected,
	} {
		got := decision.Status()
		if got != want || !got.Terminal() {
			t.Fatalf("%s: expected terminal status %s, got %s", decision, want, got)
		}
	}
	if models.StatusUnderReview.Terminal() || models.StatusSubmitted.Terminal() {
		t.Fatalf("submitted and under-review must not be terminal")
	}
}

func TestDecideMissingManuscript(t *testing.T) {
	db := newTestDB(t)

	err := NewReviewService(db).Decide(context.Background(), 5, 404, DecisionAccept, testScores)
	if !errors.Is(err, ErrManuscriptNotFound) {
		t.Fatalf("expected ErrManuscriptNotFound, got %v", err)
	}
}

func TestDecideRequiresUnderReviewEvenWhenAssigned(t *testing.T) {
	for _, status := range []models.ManuscriptStatus{
		models.StatusSubmitted,
		models.StatusAccepted,
		models.StatusRejected,
	} {
		db := newTestDB(t)
		m := seedManuscript(t, db, 1, status)
		seedReview(t, db, m.ManuscriptID, 5)

		err := NewReviewService(db).Decide(context.Background(), 5, m.ManuscriptID, DecisionAccept, testScores)
		if !errors.Is(err, ErrManuscriptNotUnderReview) {
			t.Fatalf("status %s: expected ErrManuscriptNotUnderReview, got %v", status, err)
		}
	}
}

func TestDecideRejectsOtherReviewer(t *testing.T) {
	db := newTestDB(t)
	m := seedManuscript(t, db, 1, models.StatusUnderReview)
	seedReview(t, db, m.ManuscriptID, 5)

	err := NewReviewService(db).Decide(context.Background(), 6, m.ManuscriptID, DecisionAccept, testScores)
	if !errors.Is(err, ErrReviewerNotAssigned) {
		t.Fatalf("expected ErrReviewerNotAssigned, got %v", err)
	}

	var review models.Review
	if err := db.First(&review, "manuscript_id = ? AND reviewer_id = ?", m.ManuscriptID, 5).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}
	if review.Recommendation != nil {
		t.Fatalf("assigned reviewer's row should be untouched, got %+v", review)
	}
}

func TestDecisionRecommendation(t *testing.T) {
	if _, err := Decision("maybe").Recommendation(); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
	if _, err := ScoresFrom([]int{1, 2, 3}); err == nil {
		t.Fatalf("expected error for three scores")
	}
}

func loadManuscript(t *testing.T, db *gorm.DB, id int) models.Manuscript {
	t.Helper()
	var m models.Manuscript
	if err := db.First(&m, "manuscript_id = ?", id).Error; err != nil {
		t.Fatalf("load manuscript %d: %v", id, err)
	}
	return m
}
