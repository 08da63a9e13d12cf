package controllers

import (
	"context"
	"strconv"

	"journal-db-manager/models"
	"journal-db-manager/services"
	"journal-db-manager/utils"
)

// Submit handles `submit <title> <affiliation> <ICode> [authors...] <filename>`.
func (c *Controller) Submit(ctx context.Context, sess *Session, args []string) {
	if !sess.Is(models.RoleAuthor) {
		c.printf("Invalid command: you must be logged in as an author to submit.\n\n")
		return
	}
	if len(args) < 4 || len(args) > 4+models.MaxSecondaryAuthors {
		c.usage(invalidArgCount, usageSubmit)
		return
	}
	args = utils.SanitizeAll(args)

	icode, err := strconv.Atoi(args[2])
	if err != nil {
		c.usage("ICode must be a number.", usageSubmit)
		return
	}
	filename := args[len(args)-1]

	document, err := services.ReadDocument(filename)
	if err != nil {
		c.fail(err)
		return
	}

	m, err := c.submission.Submit(ctx, sess.RoleID, services.SubmitInput{
		Title:            args[0],
		Affiliation:      args[1],
		ICode:            icode,
		SecondaryAuthors: args[3 : len(args)-1],
		Document:         document,
	})
	if err != nil {
		if m != nil {
			c.printf("Manuscript %d was stored, but not every secondary author was.\n", m.ManuscriptID)
		}
		c.fail(err)
		return
	}

	c.printf("Manuscript submitted. Your manuscript id: `%d`\n\n", m.ManuscriptID)
}
