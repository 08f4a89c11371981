package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"Arcadia/models/postgres"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestWriteEmptyTableIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Table{Name: "sales", Header: []string{"ID", "User", "Game"}}))
	assert.Equal(t, "ID,User,Game\n", buf.String())
}

func TestFormatField(t *testing.T) {
	d := datatypes.Date(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	var nilDate *datatypes.Date
	madrid := time.FixedZone("CET", 3600)

	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"plain", "plain"},
		{d, "2024-02-29"},
		{&d, "2024-02-29"},
		{nilDate, ""},
		{time.Date(2024, 3, 1, 9, 5, 59, 0, madrid), "2024-03-01 08:05"},
		{decimal.RequireFromString("5"), "5.00"},
		{decimal.RequireFromString("19.9"), "19.90"},
		{postgres.PaymentCrypto, "CRYPTO"},
		{uint(42), "42"},
		{4, "4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatField(tc.in))
	}
}

func TestWriteRejectsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Table{Name: "x", Header: []string{"a", "b"}, Rows: [][]any{{1}}})
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	table := Table{
		Name:   "reviews",
		Header: []string{"review_id", "comment", "rating", "amount"},
		Rows: [][]any{
			{uint(1), `says "hi", then leaves`, 5, decimal.RequireFromString("1.5")},
			{uint(2), "multi\nline ñandú", 3, decimal.Zero},
			{uint(3), "", 1, decimal.RequireFromString("99999999.99")},
		},
	}
	path := filepath.Join(t.TempDir(), "nested", "reviews.csv")
	require.NoError(t, WriteFile(path, table))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	header, rows, err := Read(f)
	require.NoError(t, err)
	assert.Equal(t, table.Header, header)
	require.Len(t, rows, len(table.Rows))
	for i, row := range table.Rows {
		for j, v := range row {
			assert.Equal(t, FormatField(v), rows[i][j], "row %d col %d", i, j)
		}
	}
	assert.Equal(t, "multi\nline ñandú", rows[1][1])
	assert.Equal(t, "1.50", rows[0][3])
}

func TestReadEmpty(t *testing.T) {
	_, _, err := Read(bytes.NewReader(nil))
	assert.Error(t, err)
}
