package controllers

import (
	"context"

	"journal-db-manager/models"
)

// Resign handles `resign`. The session is cleared only when every delete succeeds.
func (c *Controller) Resign(ctx context.Context, sess *Session, args []string) {
	if !sess.Is(models.RoleReviewer) {
		c.printf("Invalid command: not logged in as reviewer.\n\n")
		return
	}
	if len(args) != 0 {
		c.usage(invalidArgCount, usageResign)
		return
	}

	if err := c.reviewers.Resign(ctx, sess.RoleID); err != nil {
		c.fail(err)
		return
	}
	sess.Clear()
	c.printf("Thank you for your service.\n\n")
}
