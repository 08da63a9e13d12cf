package services

import "errors"

var (
	ErrUnknownLogin               = errors.New("no user with that login id")
	ErrRoleRecordMissing          = errors.New("login id refers to a missing role record")
	ErrInvalidRole                = errors.New("invalid role")
	ErrInvalidEmail               = errors.New("invalid email address")
	ErrTooManySecondaryAuthors    = errors.New("too many secondary authors")
	ErrDocumentUnreadable         = errors.New("manuscript file cannot be read")
	ErrManuscriptNotFound         = errors.New("manuscript not found")
	ErrManuscriptNotUnderReview   = errors.New("manuscript is not under review")
	ErrReviewerNotAssigned        = errors.New("reviewer is not assigned to this manuscript")
	ErrInvalidDecision            = errors.New("invalid review decision")
	ErrEditorStatusNotImplemented = errors.New("status view for editors is not implemented")
)
