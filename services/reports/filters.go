package reports

import (
	"Arcadia/models/postgres"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Every filter arrives as raw text. Blank means "not given"; a value that
// cannot be parsed is dropped and explained in the report warnings.

func parseDay(field, raw string, warnings *[]string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s: %q is not a YYYY-MM-DD date, ignored", field, raw))
		return nil
	}
	return &t
}

func parseID(field, raw string, warnings *[]string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 || uint64(n) > uint64(^uint(0)) {
		*warnings = append(*warnings, fmt.Sprintf("%s: %q is not a positive integer, ignored", field, raw))
		return nil
	}
	id := uint(n)
	return &id
}

// parsePaymentMethod accepts a 1-based menu option or the method name.
func parsePaymentMethod(raw string, warnings *[]string) *postgres.PaymentMethod {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var (
		m   postgres.PaymentMethod
		err error
	)
	if i, convErr := strconv.Atoi(raw); convErr == nil {
		m, err = postgres.PaymentMethodByIndex(i)
	} else {
		m, err = postgres.ParsePaymentMethod(raw)
	}
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("payment_method: %q is not an option 1..%d or one of %v, ignored",
			raw, len(postgres.PaymentMethods), postgres.PaymentMethods))
		return nil
	}
	return &m
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching raw anywhere, with raw's
// own wildcards taken literally. Use with ESCAPE '\'.
func containsPattern(raw string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(raw)) + "%"
}
