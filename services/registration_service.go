package services

import (
	"context"
	"fmt"
	"log"

	"journal-db-manager/config"
	"journal-db-manager/models"
	"journal-db-manager/utils"

	"gorm.io/gorm"
)

type RegisterAuthorInput struct {
	FName       string
	LName       string
	Email       string
	Affiliation string
}

type RegisterReviewerInput struct {
	FName  string
	LName  string
	ICodes []int
}

// Registration is the outcome of a successful register command.
type Registration struct {
	Role    models.Role
	RoleID  int
	LoginID int

	// ICodes whose expertise row could not be inserted, with the reason.
	FailedICodes map[int]error
}

type RegistrationService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewRegistrationService(db *gorm.DB, notifier *NotificationService) *RegistrationService {
	if db == nil {
		db = config.DB
	}
	return &RegistrationService{db: db, notifier: notifier}
}

func (s *RegistrationService) RegisterAuthor(ctx context.Context, input RegisterAuthorInput) (*Registration, error) {
	if !utils.ValidateEmail(input.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, input.Email)
	}
	author := models.Author{
		FName:       input.FName,
		LName:       input.LName,
		Email:       input.Email,
		Affiliation: input.Affiliation,
	}
	if err := s.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	reg, err := s.issueLogin(ctx, models.RoleAuthor, author.AuthorID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendLoginID(author.Email, author.FullName(), reg.LoginID); err != nil {
			log.Printf("[register] login id email to %s not sent: %v", author.Email, err)
		}
	}
	return reg, nil
}

func (s *RegistrationService) RegisterEditor(ctx context.Context, fname, lname string) (*Registration, error) {
	editor := models.Editor{FName: fname, LName: lname}
	if err := s.db.WithContext(ctx).Create(&editor).Error; err != nil {
		return nil, fmt.Errorf("insert editor: %w", err)
	}
	return s.issueLogin(ctx, models.RoleEditor, editor.EditorID)
}

// RegisterReviewer inserts the reviewer and one expertise row per ICode. An
// expertise row that fails is reported in FailedICodes and does not stop the rest.
func (s *RegistrationService) RegisterReviewer(ctx context.Context, input RegisterReviewerInput) (*Registration, error) {
	reviewer := models.Reviewer{FName: input.FName, LName: input.LName}
	if err := s.db.WithContext(ctx).Create(&reviewer).Error; err != nil {
		return nil, fmt.Errorf("insert reviewer: %w", err)
	}

	failed := make(map[int]error)
	for _, code := range input.ICodes {
		row := models.ReviewerExpertise{ReviewerID: reviewer.ReviewerID, ICode: code}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			log.Printf("[register] expertise icode=%d reviewer=%d: %v", code, reviewer.ReviewerID, err)
			failed[code] = err
		}
	}

	reg, err := s.issueLogin(ctx, models.RoleReviewer, reviewer.ReviewerID)
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		reg.FailedICodes = failed
	}
	return reg, nil
}

func (s *RegistrationService) issueLogin(ctx context.Context, role models.Role, roleID int) (*Registration, error) {
	mapping := models.LoginToRole{RoleID: roleID, RoleType: role}
	if err := s.db.WithContext(ctx).Create(&mapping).Error; err != nil {
		return nil, fmt.Errorf("insert login mapping for %s %d: %w", role, roleID, err)
	}
	log.Printf("[register] %s id=%d login_id=%d", role, roleID, mapping.LoginID)
	return &Registration{Role: role, RoleID: roleID, LoginID: mapping.LoginID}, nil
}
