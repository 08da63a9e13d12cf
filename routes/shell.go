package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"journal-db-manager/controllers"
	"journal-db-manager/utils"

	"github.com/ergochat/readline"
)

const (
	Prompt = ">>> "
	Intro  = "\nWelcome to the Journal DB Manager.  Type help or ? to list commands.\n"
)

// LineReader yields one input line per call. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Shell reads commands one line at a time and dispatches them with an
// explicit session.
type Shell struct {
	ctrl    *controllers.Controller
	in      LineReader
	out     io.Writer
	session controllers.Session
}

func NewShell(ctrl *controllers.Controller, in LineReader, out io.Writer) *Shell {
	return &Shell{ctrl: ctrl, in: in, out: out}
}

// Session returns a copy of the current session.
func (s *Shell) Session() controllers.Session {
	return s.session
}

// Run loops until exit, end of input, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s\n", Intro)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				s.printf("Shutting down...\n")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		if s.Execute(ctx, line) {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the shell should stop.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	words, err := utils.Tokenize(line)
	if err != nil {
		s.printf("Invalid input: %v\n\n", err)
		return false
	}
	if len(words) == 0 {
		return false
	}

	log.Printf("[shell] login=%d role=%q command=%q", s.session.LoginID, s.session.Role, words[0])
	return s.dispatch(ctx, line, words)
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
