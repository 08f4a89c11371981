package export

import (
	"Arcadia/models/postgres"
	"context"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"
)

type tableDump struct {
	name   string
	header []string
	load   func(db *gorm.DB) ([][]any, error)
}

func rowsOf[T any](order string, row func(*T) []any) func(*gorm.DB) ([][]any, error) {
	return func(db *gorm.DB) ([][]any, error) {
		var items []T
		if err := db.Order(order).Find(&items).Error; err != nil {
			return nil, err
		}
		out := make([][]any, 0, len(items))
		for i := range items {
			out = append(out, row(&items[i]))
		}
		return out, nil
	}
}

// Password hashes are never exported.
var dumps = []tableDump{
	{
		name:   "users",
		header: []string{"user_id", "name", "email", "role", "registration_date"},
		load: rowsOf("user_id", func(u *postgres.User) []any {
			return []any{u.ID, u.Name, u.Email, u.Role, u.RegistrationDate}
		}),
	},
	{
		name:   "games",
		header: []string{"game_id", "name", "description", "release_date", "price", "state", "developer_id"},
		load: rowsOf("game_id", func(g *postgres.Game) []any {
			return []any{g.ID, g.Name, g.Description, g.ReleaseDate, g.Price, g.State, g.DeveloperID}
		}),
	},
	{
		name:   "purchases",
		header: []string{"purchase_id", "user_id", "game_id", "purchased_at", "amount_paid", "payment_method"},
		load: rowsOf("purchase_id", func(p *postgres.Purchase) []any {
			return []any{p.ID, p.UserID, p.GameID, p.PurchasedAt, p.AmountPaid, p.PaymentMethod}
		}),
	},
	{
		name:   "reviews",
		header: []string{"review_id", "user_id", "game_id", "rating", "comment", "review_date"},
		load: rowsOf("review_id", func(r *postgres.Review) []any {
			return []any{r.ID, r.UserID, r.GameID, r.Rating, r.Comment, r.ReviewDate}
		}),
	},
	{
		name:   "events",
		header: []string{"event_id", "title", "description", "start_date", "end_date", "event_type"},
		load: rowsOf("event_id", func(e *postgres.Event) []any {
			return []any{e.ID, e.Title, e.Description, e.StartDate, e.EndDate, e.EventType}
		}),
	},
}

// DumpTables writes users, games, purchases, reviews and events to
// dir/<table>.csv and returns the written paths.
func DumpTables(ctx context.Context, db *gorm.DB, dir string) ([]string, error) {
	paths := make([]string, 0, len(dumps))
	for _, d := range dumps {
		rows, err := d.load(db.WithContext(ctx))
		if err != nil {
			return paths, fmt.Errorf("reading %s: %w", d.name, err)
		}
		path := filepath.Join(dir, d.name+".csv")
		if err := WriteFile(path, Table{Name: d.name, Header: d.header, Rows: rows}); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
