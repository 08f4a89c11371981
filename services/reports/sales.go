package reports

import (
	"Arcadia/models/postgres"
	"Arcadia/services/export"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SalesFilter struct {
	From          string
	To            string
	PaymentMethod string
	UserID        string
	GameID        string
}

// AppliedSalesFilter is what remains of a SalesFilter after parsing.
type AppliedSalesFilter struct {
	From          *time.Time              `json:"from,omitempty"`
	To            *time.Time              `json:"to,omitempty"`
	PaymentMethod *postgres.PaymentMethod `json:"payment_method,omitempty"`
	UserID        *uint                   `json:"user_id,omitempty"`
	GameID        *uint                   `json:"game_id,omitempty"`
}

type SaleRow struct {
	PurchaseID    uint                   `json:"purchase_id"`
	UserName      string                 `json:"user_name"`
	GameName      string                 `json:"game_name"`
	AmountPaid    decimal.Decimal        `json:"amount_paid"`
	PurchasedAt   time.Time              `json:"purchased_at"`
	PaymentMethod postgres.PaymentMethod `json:"payment_method"`
}

type SalesReport struct {
	Rows     []SaleRow
	Applied  AppliedSalesFilter
	Warnings []string
}

func (f SalesFilter) apply() (AppliedSalesFilter, []string) {
	var warnings []string
	applied := AppliedSalesFilter{
		From:          parseDay("from", f.From, &warnings),
		To:            parseDay("to", f.To, &warnings),
		PaymentMethod: parsePaymentMethod(f.PaymentMethod, &warnings),
		UserID:        parseID("user_id", f.UserID, &warnings),
		GameID:        parseID("game_id", f.GameID, &warnings),
	}
	return applied, warnings
}

// Sales lists purchases with buyer and game names, newest first. Both date
// bounds are whole days: To includes every purchase made on that day.
func (s *Service) Sales(ctx context.Context, filter SalesFilter) (*SalesReport, error) {
	applied, warnings := filter.apply()
	s.warn("sales", warnings)

	report := &SalesReport{Applied: applied, Warnings: warnings, Rows: []SaleRow{}}
	err := s.cached(ctx, "sales", applied, &report.Rows, func() error {
		q := s.db.WithContext(ctx).
			Model(&postgres.Purchase{}).
			Select("purchases.purchase_id, users.name AS user_name, games.name AS game_name, " +
				"purchases.amount_paid, purchases.purchased_at, purchases.payment_method").
			Joins("JOIN users ON users.user_id = purchases.user_id").
			Joins("JOIN games ON games.game_id = purchases.game_id")
		if applied.From != nil {
			q = q.Where("purchases.purchased_at >= ?", *applied.From)
		}
		if applied.To != nil {
			q = q.Where("purchases.purchased_at < ?", applied.To.AddDate(0, 0, 1))
		}
		if applied.PaymentMethod != nil {
			q = q.Where("purchases.payment_method = ?", *applied.PaymentMethod)
		}
		if applied.UserID != nil {
			q = q.Where("purchases.user_id = ?", *applied.UserID)
		}
		if applied.GameID != nil {
			q = q.Where("purchases.game_id = ?", *applied.GameID)
		}
		return q.Order("purchases.purchased_at DESC").Order("purchases.purchase_id DESC").
			Scan(&report.Rows).Error
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *SalesReport) Table() export.Table {
	t := export.Table{
		Name:   "sales",
		Header: []string{"ID", "User", "Game", "Amount", "Date", "Payment method"},
		Rows:   make([][]any, 0, len(r.Rows)),
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []any{row.PurchaseID, row.UserName, row.GameName, row.AmountPaid, row.PurchasedAt, row.PaymentMethod})
	}
	return t
}
