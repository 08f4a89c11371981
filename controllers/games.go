package controllers

import (
	"Arcadia/models/postgres"
	"Arcadia/services/catalog"
	"Arcadia/services/export"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

func AddGame(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		price, err := postgres.ParseMoney("price", c.String("price"))
		if err != nil {
			return err
		}
		game, err := svc.CreateGame(c.Context, catalog.NewGame{
			Name:        c.String("name"),
			Description: c.String("description"),
			Price:       price,
			State:       postgres.GameState(strings.ToUpper(c.String("state"))),
			DeveloperID: c.Uint("developer"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "created game %d (%s)\n", game.ID, game.Name)
		return nil
	}
}

func ListGames(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		games, err := svc.ListGames(c.Context)
		if err != nil {
			return err
		}
		t := export.Table{Name: "games", Header: []string{"ID", "Name", "Price", "State", "Developer"}}
		for _, g := range games {
			t.Rows = append(t.Rows, []any{g.ID, g.Name, g.Price, g.State, g.DeveloperName})
		}
		return writeTable(c, t)
	}
}

// AddPurchase records a purchase. --method takes a menu option 1..4 or a name.
func AddPurchase(svc *catalog.Service) cli.ActionFunc {
	return func(c *cli.Context) error {
		method, err := paymentMethod(c.String("method"))
		if err != nil {
			return err
		}
		in := catalog.NewPurchase{
			UserID:        c.Uint("user"),
			GameID:        c.Uint("game"),
			PaymentMethod: method,
		}
		if raw := c.String("amount"); raw != "" {
			amount, err := postgres.ParseMoney("amount", raw)
			if err != nil {
				return err
			}
			in.Amount = &amount
		}
		purchase, err := svc.CreatePurchase(c.Context, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "created purchase %d for %s\n", purchase.ID, purchase.AmountPaid.StringFixed(postgres.MoneyScale))
		return nil
	}
}

func paymentMethod(raw string) (postgres.PaymentMethod, error) {
	if i, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return postgres.PaymentMethodByIndex(i)
	}
	return postgres.ParsePaymentMethod(raw)
}
