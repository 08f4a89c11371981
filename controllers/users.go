package controllers

import (
	"Arcadia/models/postgres"
	"Arcadia/services/catalog"
	"Arcadia/services/export"
	"fmt"

	"github.com/urfave/cli/v2"
)

func AddUser(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		role, err := postgres.ParseRole(c.String("role"))
		if err != nil {
			return err
		}
		user, err := svc.CreateUser(c.Context, catalog.NewUser{
			Name:     c.String("name"),
			Email:    c.String("email"),
			Password: c.String("password"),
			Role:     role,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "created user %d (%s)\n", user.ID, user.Email)
		return nil
	}
}

func DeleteUser(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		id := c.Uint("id")
		if err := svc.DeleteUser(c.Context, id); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "deleted user %d\n", id)
		return nil
	}
}

func ListUsers(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		users, err := svc.ListUsers(c.Context)
		if err != nil {
			return err
		}
		t := export.Table{Name: "users", Header: []string{"ID", "Name", "Email", "Role", "Registered"}}
		for _, u := range users {
			t.Rows = append(t.Rows, []any{u.ID, u.Name, u.Email, u.Role, u.RegistrationDate})
		}
		return writeTable(c, t)
	}
}
