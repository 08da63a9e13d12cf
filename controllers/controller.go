package controllers

import (
	"fmt"
	"io"
	"os"

	"journal-db-manager/config"
	"journal-db-manager/services"

	"gorm.io/gorm"
)

// Controller holds the services the command handlers call and the writer they
// report to. Handlers never return errors: every outcome is printed.
type Controller struct {
	out          io.Writer
	registration *services.RegistrationService
	login        *services.LoginService
	submission   *services.SubmissionService
	reviews      *services.ReviewService
	reviewers    *services.ReviewerService
	status       *services.ManuscriptStatusService
}

func NewController(db *gorm.DB, out io.Writer) *Controller {
	if db == nil {
		db = config.DB
	}
	if out == nil {
		out = os.Stdout
	}
	return &Controller{
		out:          out,
		registration: services.NewRegistrationService(db, services.NewNotificationService(nil)),
		login:        services.NewLoginService(db),
		submission:   services.NewSubmissionService(db),
		reviews:      services.NewReviewService(db),
		reviewers:    services.NewReviewerService(db),
		status:       services.NewManuscriptStatusService(db),
	}
}

func (c *Controller) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) println(args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// usage reports an argument problem and the correct form of the command.
func (c *Controller) usage(problem, form string) {
	c.printf("%s\n **Usage:** %s\n\n", problem, form)
}

// fail prints a database or service error as-is.
func (c *Controller) fail(err error) {
	c.printf("%v\n\n", err)
}
