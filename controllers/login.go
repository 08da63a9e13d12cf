package controllers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"journal-db-manager/models"
	"journal-db-manager/services"
	"journal-db-manager/utils"
)

// Login handles `login <id>`. The session only changes when the id resolves.
func (c *Controller) Login(ctx context.Context, sess *Session, args []string) {
	if len(args) != 1 {
		c.usage(invalidArgCount, usageLogin)
		return
	}
	loginID, err := utils.ParseID(args[0])
	if err != nil {
		c.usage("Login id must be a positive number.", usageLogin)
		return
	}

	id, err := c.login.Resolve(ctx, loginID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownLogin) {
			c.printf("Login failed: no user with login id %d.\n\n", loginID)
			return
		}
		c.printf("Login failed: %v\n\n", err)
		return
	}

	sess.Start(id)
	switch id.Role {
	case models.RoleAuthor:
		c.printf("Welcome author: %s, %s\n\n", id.Name, id.Email)
	case models.RoleEditor:
		c.printf("Welcome editor: %s\n\n", id.Name)
	case models.RoleReviewer:
		c.printf("Welcome reviewer: %s\n", id.Name)
		if len(id.Expertise) > 0 {
			codes := make([]string, len(id.Expertise))
			for i, code := range id.Expertise {
				codes[i] = strconv.Itoa(code)
			}
			c.printf("Expertise (ICodes): %s\n", strings.Join(codes, ", "))
		}
		c.println()
		c.printAssignments(id.Assignments)
	}
}

func (c *Controller) printAssignments(rows []services.ReviewAssignment) {
	if len(rows) == 0 {
		c.printf("No manuscripts assigned.\n\n")
		return
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		recommendation := "-"
		if r.Recommendation != nil {
			recommendation = strconv.Itoa(*r.Recommendation)
		}
		table = append(table, []string{
			strconv.Itoa(r.ManuscriptID),
			r.Title,
			string(r.Status),
			utils.FormatDate(r.DateSent),
			utils.FormatDate(r.DateFeedbackReceived),
			recommendation,
		})
	}
	if err := utils.WriteTable(c.out, []string{"ID", "Title", "Status", "Sent", "Feedback", "Recommendation"}, table); err != nil {
		c.fail(err)
		return
	}
	c.println()
}
