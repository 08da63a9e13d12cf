package services

import (
	"context"
	"errors"
	"fmt"

	"journal-db-manager/config"
	"journal-db-manager/models"

	"gorm.io/gorm"
)

// Identity is what a login id resolves to, with the fields its greeting needs.
type Identity struct {
	LoginID int
	RoleID  int
	Role    models.Role
	Name    string
	Email   string

	// Reviewer only.
	Expertise   []int
	Assignments []ReviewAssignment
}

type LoginService struct {
	db        *gorm.DB
	reviews   *ReviewService
	reviewers *ReviewerService
}

func NewLoginService(db *gorm.DB) *LoginService {
	if db == nil {
		db = config.DB
	}
	return &LoginService{
		db:        db,
		reviews:   NewReviewService(db),
		reviewers: NewReviewerService(db),
	}
}

// Resolve looks up the role behind loginID and loads the greeting details.
func (s *LoginService) Resolve(ctx context.Context, loginID int) (*Identity, error) {
	var mapping models.LoginToRole
	if err := s.db.WithContext(ctx).Where("login_id = ?", loginID).First(&mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownLogin
		}
		return nil, fmt.Errorf("lookup login %d: %w", loginID, err)
	}

	id := &Identity{LoginID: mapping.LoginID, RoleID: mapping.RoleID, Role: mapping.RoleType}
	var err error
	switch mapping.RoleType {
	case models.RoleAuthor:
		err = s.loadAuthor(ctx, id)
	case models.RoleEditor:
		err = s.loadEditor(ctx, id)
	case models.RoleReviewer:
		err = s.loadReviewer(ctx, id)
	default:
		return nil, fmt.Errorf("%w %q for login %d", ErrInvalidRole, mapping.RoleType, loginID)
	}
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (s *LoginService) loadAuthor(ctx context.Context, id *Identity) error {
	var author models.Author
	if err := s.db.WithContext(ctx).Where("author_id = ?", id.RoleID).First(&author).Error; err != nil {
		return roleLookupError(id, err)
	}
	id.Name = author.FullName()
	id.Email = author.Email
	return nil
}

func (s *LoginService) loadEditor(ctx context.Context, id *Identity) error {
	var editor models.Editor
	if err := s.db.WithContext(ctx).Where("editor_id = ?", id.RoleID).First(&editor).Error; err != nil {
		return roleLookupError(id, err)
	}
	id.Name = editor.FullName()
	return nil
}

func (s *LoginService) loadReviewer(ctx context.Context, id *Identity) error {
	var reviewer models.Reviewer
	if err := s.db.WithContext(ctx).Where("reviewer_id = ?", id.RoleID).First(&reviewer).Error; err != nil {
		return roleLookupError(id, err)
	}
	id.Name = reviewer.FullName()

	expertise, err := s.reviewers.Expertise(ctx, id.RoleID)
	if err != nil {
		return err
	}
	id.Expertise = expertise

	assignments, err := s.reviews.Assignments(ctx, id.RoleID)
	if err != nil {
		return err
	}
	id.Assignments = assignments
	return nil
}

func roleLookupError(id *Identity, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrRoleRecordMissing, id.Role, id.RoleID)
	}
	return fmt.Errorf("lookup %s %d: %w", id.Role, id.RoleID, err)
}
