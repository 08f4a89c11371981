package controllers

import (
	"Arcadia/services/export"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExportTables dumps the main tables into --dir, one CSV file each.
func ExportTables(db *gorm.DB, log *zap.SugaredLogger) cli.ActionFunc {
	return func(c *cli.Context) error {
		dir := c.String("dir")
		paths, err := export.DumpTables(c.Context, db, dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(c.App.Writer, p)
		}
		log.Infow("tables exported", "dir", dir, "files", len(paths))
		return nil
	}
}
