package controllers

import (
	"strings"

	"journal-db-manager/models"
)

var usageRegister = registerUsage()

func registerUsage() string {
	names := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		names[i] = r.String()
	}
	return "register <" + strings.Join(names, " | ") + ">"
}

const (
	usageRegisterAuthor   = "register author <fname> <lname> <email> <affiliation>"
	usageRegisterEditor   = "register editor <fname> <lname>"
	usageRegisterReviewer = "register reviewer <fname> <lname> <ICode 1> [<ICode 2>] [<ICode 3>]"
	usageLogin            = "login <id>"
	usageResign           = "resign"
	usageSubmit           = "submit <title> <affiliation> <ICode> [<author2>] [<author3>] [<author4>] <filename>"
	usageAccept           = "accept <manuscriptID> <appropriateness> <clarity> <methodology> <contribution>"
	usageReject           = "reject <manuscriptID> <appropriateness> <clarity> <methodology> <contribution>"
	usageStatus           = "status"
	usageExit             = "exit"
)

const invalidArgCount = "Invalid number of arguments."

// CommandHelp describes one shell command for the help listing.
type CommandHelp struct {
	Name    string
	Usage   string
	Summary string
}

// Commands lists the shell commands in the order help prints them.
var Commands = []CommandHelp{
	{Name: "register", Usage: usageRegisterAuthor, Summary: "register as an author; prints your login id"},
	{Name: "register", Usage: usageRegisterEditor, Summary: "register as an editor"},
	{Name: "register", Usage: usageRegisterReviewer, Summary: "register as a reviewer with 1 to 3 topic codes"},
	{Name: "login", Usage: usageLogin, Summary: "start a session with your login id"},
	{Name: "submit", Usage: usageSubmit, Summary: "authors: submit a manuscript read from a text file"},
	{Name: "status", Usage: usageStatus, Summary: "authors: list your manuscripts; reviewers: list assignments"},
	{Name: "accept", Usage: usageAccept, Summary: "reviewers: recommend acceptance with four scores"},
	{Name: "reject", Usage: usageReject, Summary: "reviewers: recommend rejection with four scores"},
	{Name: "resign", Usage: usageResign, Summary: "reviewers: remove your reviewer account"},
	{Name: "exit", Usage: usageExit, Summary: "leave the shell"},
}
