package controllers

import (
	"Arcadia/services/reports"

	"github.com/urfave/cli/v2"
)

// SalesReport prints purchases joined with users and games.
func SalesReport(svc *reports.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		report, err := svc.Sales(c.Context, reports.SalesFilter{
			From:          c.String("from"),
			To:            c.String("to"),
			PaymentMethod: c.String("method"),
			UserID:        c.String("user"),
			GameID:        c.String("game"),
		})
		if err != nil {
			return err
		}
		printWarnings(c, report.Warnings)
		return writeTable(c, report.Table())
	}
}

func ReviewsReport(svc *reports.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		report, err := svc.Reviews(c.Context, reports.ReviewFilter{
			GameID: c.String("game"),
			UserID: c.String("user"),
		})
		if err != nil {
			return err
		}
		printWarnings(c, report.Warnings)
		return writeTable(c, report.Table())
	}
}

func ActivityReport(svc *reports.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		report, err := svc.Activity(c.Context, reports.ActivityFilter{
			UserID:       c.String("user"),
			ActivityType: c.String("type"),
		})
		if err != nil {
			return err
		}
		printWarnings(c, report.Warnings)
		return writeTable(c, report.Table())
	}
}
