package controllers

import (
	"context"
	"errors"
	"strconv"

	"journal-db-manager/models"
	"journal-db-manager/services"
	"journal-db-manager/utils"
)

// Status handles `status` for the logged-in role.
func (c *Controller) Status(ctx context.Context, sess *Session, args []string) {
	if !sess.LoggedIn() {
		c.printf("Invalid command: you must be logged in to view status.\n\n")
		return
	}
	if len(args) != 0 {
		c.usage(invalidArgCount, usageStatus)
		return
	}

	switch sess.Role {
	case models.RoleAuthor:
		rows, err := c.status.ForAuthor(ctx, sess.RoleID)
		if err != nil {
			c.fail(err)
			return
		}
		c.printAuthorStatus(rows)
	case models.RoleEditor:
		_, err := c.status.ForEditor(ctx, sess.RoleID)
		if errors.Is(err, services.ErrEditorStatusNotImplemented) {
			c.printf("Status view for editors is not implemented yet.\n\n")
			return
		}
		if err != nil {
			c.fail(err)
		}
	case models.RoleReviewer:
		rows, err := c.reviews.Assignments(ctx, sess.RoleID)
		if err != nil {
			c.fail(err)
			return
		}
		c.printAssignments(rows)
	}
}

func (c *Controller) printAuthorStatus(rows []services.ManuscriptStatusRow) {
	if len(rows) == 0 {
		c.printf("You have not submitted any manuscripts.\n\n")
		return
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		received, updated := r.DateReceived, r.StatusLastUpdated
		table = append(table, []string{
			strconv.Itoa(r.ManuscriptID),
			r.Title,
			utils.FormatDate(&received),
			string(r.Status),
			utils.FormatDate(&updated),
		})
	}
	if err := utils.WriteTable(c.out, []string{"ID", "Title", "Received", "Status", "Last Updated"}, table); err != nil {
		c.fail(err)
		return
	}
	c.println()
}
