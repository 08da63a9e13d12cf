package routes

import (
	"context"
	"strings"

	"journal-db-manager/controllers"
)

// dispatch runs one tokenized command line against the session. It reports
// whether the shell should stop.
func (s *Shell) dispatch(ctx context.Context, line string, words []string) bool {
	name, args := strings.ToLower(words[0]), words[1:]

	switch name {
	case "register":
		s.ctrl.Register(ctx, &s.session, args)
	case "login":
		s.ctrl.Login(ctx, &s.session, args)
	case "resign":
		s.ctrl.Resign(ctx, &s.session, args)
	case "submit":
		s.ctrl.Submit(ctx, &s.session, args)
	case "accept":
		s.ctrl.Accept(ctx, &s.session, args)
	case "reject":
		s.ctrl.Reject(ctx, &s.session, args)
	case "status":
		s.ctrl.Status(ctx, &s.session, args)
	case "help", "?":
		s.help()
	case "exit", "quit":
		s.printf("Shutting down...\n")
		return true
	default:
		s.printf("*** Unknown syntax: %s\n", line)
	}
	return false
}

func (s *Shell) help() {
	s.printf("\nDocumented commands:\n")
	for _, cmd := range controllers.Commands {
		s.printf("  %s\n      %s\n", cmd.Usage, cmd.Summary)
	}
	s.printf("  help\n      show this list\n\n")
}
