package controllers

import (
	"Arcadia/services/export"
	"fmt"

	"github.com/urfave/cli/v2"
)

// writeTable sends t to --out when given, otherwise to the app writer.
func writeTable(c *cli.Context, t export.Table) error {
	if out := c.String("out"); out != "" {
		if err := export.WriteFile(out, t); err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "wrote %d rows to %s\n", len(t.Rows), out)
		return nil
	}
	return export.Write(c.App.Writer, t)
}

func printWarnings(c *cli.Context, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(c.App.ErrWriter, "warning: %s\n", w)
	}
}
