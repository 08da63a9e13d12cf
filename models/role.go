package models

import "strings"

// Role identifies which kind of account a login id resolves to.
type Role string

const (
	RoleAuthor   Role = "author"
	RoleEditor   Role = "editor"
	RoleReviewer Role = "reviewer"
)

// Roles lists every role in the order usage text names them.
var Roles = []Role{RoleAuthor, RoleEditor, RoleReviewer}

// ParseRole maps user input onto a Role. Matching ignores case and surrounding space.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAuthor:
		return RoleAuthor, true
	case RoleEditor:
		return RoleEditor, true
	case RoleReviewer:
		return RoleReviewer, true
	}
	return "", false
}

func (r Role) Valid() bool {
	switch r {
	case RoleAuthor, RoleEditor, RoleReviewer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
