package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04"
)

// Table is a flat result set ready to be written: one header row and one
// slice of values per record.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Write renders t as CSV. An empty table still gets its header row.
func Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	record := make([]string, len(t.Header))
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%s row %d has %d fields, header has %d", t.Name, i, len(row), len(t.Header))
		}
		for j, v := range row {
			record[j] = FormatField(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to path, creating parent directories as needed.
func WriteFile(path string, t Table) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, t)
}

// Read parses a CSV written by Write back into its header and string rows.
func Read(r io.Reader) (header []string, rows [][]string, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv has no header row")
	}
	return records[0], records[1:], nil
}

// FormatField renders one value the way every export shows it: dates as
// YYYY-MM-DD, timestamps as YYYY-MM-DD HH:MM in UTC, money with two decimals.
func FormatField(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case datatypes.Date:
		return time.Time(x).Format(DateLayout)
	case *datatypes.Date:
		if x == nil {
			return ""
		}
		return time.Time(*x).Format(DateLayout)
	case time.Time:
		return x.UTC().Format(TimestampLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.UTC().Format(TimestampLayout)
	case decimal.Decimal:
		return x.StringFixed(2)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.StringFixed(2)
	case *uint:
		if x == nil {
			return ""
		}
		return strconv.FormatUint(uint64(*x), 10)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
