package postgres

import (
	errs "Arcadia/errors"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits kept for every monetary column.
const MoneyScale = 2

// numeric(10,2) upper bound
var maxMoney = decimal.New(1, 8)

// CheckMoney refuses amounts that numeric(10,2) cannot hold exactly.
// Nothing is ever rounded.
func CheckMoney(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.Validation(field, "amount %s is negative", d)
	}
	if !d.Equal(d.Round(MoneyScale)) {
		return errs.Validation(field, "amount %s has more than %d decimals", d, MoneyScale)
	}
	if d.GreaterThanOrEqual(maxMoney) {
		return errs.Validation(field, "amount %s is too large", d)
	}
	return nil
}

// ParseMoney reads a decimal amount from text without going through float64.
func ParseMoney(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Validation(field, "%q is not a decimal amount", s)
	}
	if err := CheckMoney(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
