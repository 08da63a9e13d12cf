package controllers

import (
	"context"
	"sort"

	"journal-db-manager/models"
	"journal-db-manager/services"
	"journal-db-manager/utils"
)

// Register handles `register <author | editor | reviewer> ...`.
func (c *Controller) Register(ctx context.Context, sess *Session, args []string) {
	if len(args) == 0 {
		c.usage(invalidArgCount, usageRegister)
		return
	}
	args = utils.SanitizeAll(args)

	role, ok := models.ParseRole(args[0])
	if !ok {
		c.usage("Invalid argument.", usageRegister)
		return
	}

	var (
		reg *services.Registration
		err error
	)
	switch role {
	case models.RoleAuthor:
		if len(args) != 5 {
			c.usage(invalidArgCount, usageRegisterAuthor)
			return
		}
		reg, err = c.registration.RegisterAuthor(ctx, services.RegisterAuthorInput{
			FName:       args[1],
			LName:       args[2],
			Email:       args[3],
			Affiliation: args[4],
		})
	case models.RoleEditor:
		if len(args) != 3 {
			c.usage(invalidArgCount, usageRegisterEditor)
			return
		}
		reg, err = c.registration.RegisterEditor(ctx, args[1], args[2])
	case models.RoleReviewer:
		if len(args) < 4 || len(args) > 6 {
			c.usage(invalidArgCount, usageRegisterReviewer)
			return
		}
		codes, perr := utils.ParseInts(args[3:])
		if perr != nil {
			c.usage("Invalid ICode: "+perr.Error()+".", usageRegisterReviewer)
			return
		}
		reg, err = c.registration.RegisterReviewer(ctx, services.RegisterReviewerInput{
			FName:  args[1],
			LName:  args[2],
			ICodes: codes,
		})
	}
	if err != nil {
		c.fail(err)
		return
	}

	if len(reg.FailedICodes) > 0 {
		codes := make([]int, 0, len(reg.FailedICodes))
		for code := range reg.FailedICodes {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		for _, code := range codes {
			c.printf("Could not record expertise for ICode %d: %v\n", code, reg.FailedICodes[code])
		}
		c.println()
	}

	c.printf("Successfully registered %s.\n\n", reg.Role)
	c.printf("## Your unique login id: `%d` ##\n\n", reg.LoginID)
}
