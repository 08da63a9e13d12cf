package controllers

import (
	"context"
	"errors"

	"journal-db-manager/models"
	"journal-db-manager/services"
	"journal-db-manager/utils"
)

// Accept handles `accept <manuscriptID> <a> <c> <m> <e>`.
func (c *Controller) Accept(ctx context.Context, sess *Session, args []string) {
	c.decide(ctx, sess, args, services.DecisionAccept, usageAccept)
}

// Reject handles `reject <manuscriptID> <a> <c> <m> <e>`.
func (c *Controller) Reject(ctx context.Context, sess *Session, args []string) {
	c.decide(ctx, sess, args, services.DecisionReject, usageReject)
}

func (c *Controller) decide(ctx context.Context, sess *Session, args []string, decision services.Decision, form string) {
	if !sess.Is(models.RoleReviewer) {
		c.printf("Invalid command: you must be logged in as a reviewer to %s.\n\n", decision)
		return
	}
	if len(args) != 5 {
		c.usage(invalidArgCount, form)
		return
	}

	manuscriptID, err := utils.ParseID(args[0])
	if err != nil {
		c.usage("Manuscript id must be a positive number.", form)
		return
	}
	values, err := utils.ParseInts(args[1:])
	if err != nil {
		c.usage("Scores must be numbers: "+err.Error()+".", form)
		return
	}
	scores, err := services.ScoresFrom(values)
	if err != nil {
		c.usage(invalidArgCount, form)
		return
	}

	err = c.reviews.Decide(ctx, sess.RoleID, manuscriptID, decision, scores)
	switch {
	case err == nil:
		verb := "accepted"
		if decision == services.DecisionReject {
			verb = "rejected"
		}
		c.printf("Feedback recorded: manuscript %d %s. Thank you.\n\n", manuscriptID, verb)
	case errors.Is(err, services.ErrManuscriptNotFound):
		c.printf("Manuscript %d does not exist.\n\n", manuscriptID)
	case errors.Is(err, services.ErrManuscriptNotUnderReview):
		c.printf("Cannot %s manuscript %d: %v.\n\n", decision, manuscriptID, err)
	case errors.Is(err, services.ErrReviewerNotAssigned):
		c.printf("Cannot %s manuscript %d: you are not assigned to review it.\n\n", decision, manuscriptID)
	default:
		c.fail(err)
	}
}
