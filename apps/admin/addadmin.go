package main

import (
	"context"
	"time"

	"github.com/edupathpro/edupath/core"
	"github.com/edupathpro/edupath/core/user"
)

// addAdmin updates or creates an admin user.User
func (cli *commandLine) addAdmin(email, name, pwd string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)
	name = core.CleanString(name)

	usr, err := cli.usrRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
	}
	if name != "" {
		usr.Name = name
	}
	usr.Roles = user.AllRoles
	usr.SetActive(true)
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = time.Now().UTC()
	if _, err := cli.usrRepo.UpdateOrCreateUser(ctx, usr); err != nil {
		return err
	}
	logger.Printf("admin account ready: %s", email)
	return nil
}
