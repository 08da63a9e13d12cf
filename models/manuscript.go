package models

import "time"

// ManuscriptStatus is the review state of a manuscript.
type ManuscriptStatus string

const (
	StatusSubmitted   ManuscriptStatus = "submitted"
	StatusUnderReview ManuscriptStatus = "under-review"
	StatusAccepted    ManuscriptStatus = "accepted"
	StatusRejected    ManuscriptStatus = "rejected"
)

// Terminal reports whether no further transition is possible.
func (s ManuscriptStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// MaxSecondaryAuthors is the number of co-authors a submission may list.
const MaxSecondaryAuthors = 3

// Manuscript represents the manuscript table.
type Manuscript struct {
	ManuscriptID      int              `gorm:"primaryKey;column:manuscript_id" json:"manuscript_id"`
	Title             string           `gorm:"column:title;not null" json:"title"`
	Document          string           `gorm:"column:document;type:longtext" json:"-"`
	Status            ManuscriptStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	AuthorID          int              `gorm:"column:primary_author_id;not null;index" json:"primary_author_id"`
	ICode             int              `gorm:"column:icode;not null" json:"icode"`
	DateReceived      time.Time        `gorm:"column:date_received" json:"date_received"`
	StatusLastUpdated time.Time        `gorm:"column:status_last_updated" json:"status_last_updated"`

	SecondaryAuthors []SecondaryAuthor `gorm:"foreignKey:ManuscriptID" json:"secondary_authors,omitempty"`
}

// SecondaryAuthor is a co-author listed on a manuscript, ordered by priority.
type SecondaryAuthor struct {
	ManuscriptID int    `gorm:"primaryKey;column:manuscript_id;autoIncrement:false" json:"manuscript_id"`
	Priority     int    `gorm:"primaryKey;column:priority;autoIncrement:false" json:"priority"`
	Name         string `gorm:"column:name;not null" json:"name"`
}

func (Manuscript) TableName() string {
	return "manuscript"
}

func (SecondaryAuthor) TableName() string {
	return "secondary_author"
}
