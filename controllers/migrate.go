package controllers

import (
	"Arcadia/config"
	"fmt"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := config.MigrateDatabase(db); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "database migrated")
		return nil
	}
}
