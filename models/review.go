package models

import "time"

const (
	RecommendAccept = 10
	RecommendReject = 0
)

// Review links a reviewer to a manuscript. The row is created when the manuscript
// is sent out for review and filled in when the reviewer gives feedback.
type Review struct {
	ManuscriptID         int        `gorm:"primaryKey;column:manuscript_id;autoIncrement:false" json:"manuscript_id"`
	ReviewerID           int        `gorm:"primaryKey;column:reviewer_id;autoIncrement:false" json:"reviewer_id"`
	Appropriateness      *int       `gorm:"column:appropriateness" json:"appropriateness"`
	Clarity              *int       `gorm:"column:clarity" json:"clarity"`
	Methodology          *int       `gorm:"column:methodology" json:"methodology"`
	Contribution         *int       `gorm:"column:contribution" json:"contribution"`
	Recommendation       *int       `gorm:"column:recommendation" json:"recommendation"`
	DateSent             *time.Time `gorm:"column:date_sent" json:"date_sent"`
	DateFeedbackReceived *time.Time `gorm:"column:date_feedback_received" json:"date_feedback_received"`
}

// ReviewerExpertise records a topic (ICode) a reviewer can review.
type ReviewerExpertise struct {
	ReviewerID int `gorm:"primaryKey;column:reviewer_id;autoIncrement:false" json:"reviewer_id"`
	ICode      int `gorm:"primaryKey;column:icode;autoIncrement:false" json:"icode"`
}

func (Review) TableName() string {
	return "review"
}

func (ReviewerExpertise) TableName() string {
	return "reviewer_expertise"
}
