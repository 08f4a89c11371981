package commands

import (
	"Arcadia/controllers"
	"Arcadia/services/catalog"
	"Arcadia/services/reports"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the services the commands act on.
type Deps struct {
	DB        *gorm.DB
	Catalog   *catalog.Service
	Reports   *reports.Service
	Log       *zap.SugaredLogger
	ExportDir string
}

func outFlag() cli.Flag {
	return &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write CSV to `FILE` instead of stdout"}
}

// SetupCommands registers every command of the catalog tool on app.
func SetupCommands(app *cli.App, d Deps) {
	app.Commands = []*cli.Command{
		{
			Name:   "migrate",
			Usage:  "create or update the catalog tables",
			Action: controllers.Migrate(d.DB),
		},
		{
			Name:  "report",
			Usage: "print a report as CSV",
			Subcommands: []*cli.Command{
				{
					Name:  "sales",
					Usage: "purchases with buyer and game, newest first",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "from", Usage: "first day, YYYY-MM-DD"},
						&cli.StringFlag{Name: "to", Usage: "last day, YYYY-MM-DD"},
						&cli.StringFlag{Name: "method", Usage: "payment method, 1-4 or CARD/PAYPAL/CREDIT/CRYPTO"},
						&cli.StringFlag{Name: "user", Usage: "user id"},
						&cli.StringFlag{Name: "game", Usage: "game id"},
						outFlag(),
					},
					Action: controllers.SalesReport(d.Reports),
				},
				{
					Name:  "reviews",
					Usage: "reviews with author and game, newest first",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "game", Usage: "game id"},
						&cli.StringFlag{Name: "user", Usage: "user id"},
						outFlag(),
					},
					Action: controllers.ReviewsReport(d.Reports),
				},
				{
					Name:  "activity",
					Usage: "activity log, newest first",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "user", Usage: "user id"},
						&cli.StringFlag{Name: "type", Usage: "activity type, partial match"},
						outFlag(),
					},
					Action: controllers.ActivityReport(d.Reports),
				},
			},
		},
		{
			Name:  "export",
			Usage: "write users, games, purchases, reviews and events as CSV files",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "dir", Value: d.ExportDir, Usage: "target `DIR`"},
			},
			Action: controllers.ExportTables(d.DB, d.Log),
		},
		{
			Name:  "user",
			Usage: "manage users",
			Subcommands: []*cli.Command{
				{
					Name: "add",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "email", Required: true},
						&cli.StringFlag{Name: "password", Required: true},
						&cli.StringFlag{Name: "role", Value: "PLAYER", Usage: "PLAYER or DEVELOPER"},
					},
					Action: controllers.AddUser(d.Catalog),
				},
				{
					Name:   "delete",
					Flags:  []cli.Flag{&cli.UintFlag{Name: "id", Required: true}},
					Action: controllers.DeleteUser(d.Catalog),
				},
				{
					Name:   "list",
					Flags:  []cli.Flag{outFlag()},
					Action: controllers.ListUsers(d.Catalog),
				},
			},
		},
		{
			Name:  "game",
			Usage: "manage games",
			Subcommands: []*cli.Command{
				{
					Name: "add",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "description"},
						&cli.StringFlag{Name: "price", Required: true},
						&cli.StringFlag{Name: "state", Value: "BETA", Usage: "BETA, LAUNCHED or RETIRED"},
						&cli.UintFlag{Name: "developer", Required: true, Usage: "developer user id"},
					},
					Action: controllers.AddGame(d.Catalog),
				},
				{
					Name:   "list",
					Flags:  []cli.Flag{outFlag()},
					Action: controllers.ListGames(d.Catalog),
				},
			},
		},
		{
			Name:  "purchase",
			Usage: "record purchases",
			Subcommands: []*cli.Command{
				{
					Name: "add",
					Flags: []cli.Flag{
						&cli.UintFlag{Name: "user", Required: true},
						&cli.UintFlag{Name: "game", Required: true},
						&cli.StringFlag{Name: "method", Value: "CARD"},
						&cli.StringFlag{Name: "amount", Usage: "defaults to the game price"},
					},
					Action: controllers.AddPurchase(d.Catalog),
				},
			},
		},
	}
}

// NewApp builds the command-line application around d.
func NewApp(d Deps) *cli.App {
	app := &cli.App{
		Name:  "arcadia",
		Usage: "gaming platform catalog administration",
	}
	SetupCommands(app, d)
	return app
}
