package controllers

import (
	"journal-db-manager/models"
	"journal-db-manager/services"
)

// Session is the logged-in state the shell passes to every command handler.
// The zero value is a logged-out session.
type Session struct {
	LoginID int
	RoleID  int
	Role    models.Role
	Name    string
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Role.Valid()
}

// Is reports whether the session is logged in as role.
func (s *Session) Is(role models.Role) bool {
	return s.LoggedIn() && s.Role == role
}

func (s *Session) Start(id *services.Identity) {
	*s = Session{LoginID: id.LoginID, RoleID: id.RoleID, Role: id.Role, Name: id.Name}
}

func (s *Session) Clear() {
	*s = Session{}
}
