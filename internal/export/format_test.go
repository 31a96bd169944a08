package export

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/entity"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2.5, "2.5"},
		{10.0, "10"},
		{1234.5, "1234.5"},
		{0.000001, "0.000001"},
		{1e6, "1000000"},
		{-3.25, "-3.25"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.in))
		})
	}
}

// Every formatted value must parse back to the same float and never use
// scientific notation.
func TestFormatNumber_RoundTrip(t *testing.T) {
	values := []float64{0, 1, 2.5, 12345.678, 0.0001, 99999999, -42.42}
	for _, v := range values {
		s := FormatNumber(v)
		assert.NotContains(t, s, "e")
		assert.NotContains(t, s, "E")
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		assert.InDelta(t, v, got, 1e-9)
	}
}

func TestHeader_CanonicalOrder(t *testing.T) {
	h := Header()
	assert.Equal(t, constants.ColumnOrder, h)

	// returned slice is a copy, mutating it must not corrupt the canonical order
	h[0] = "mutated"
	assert.Equal(t, "SKU", constants.ColumnOrder[0])
}

func TestRecords_FormatsCells(t *testing.T) {
	rows := []entity.LineItem{{
		SKU:             "207N31",
		Description:     "Lamp housing",
		HTS:             "8512.20.40",
		CountryOfOrigin: "MX",
		PackageCount:    "1",
		Quantity:        4,
		NetWeight:       1.2,
		GrossWeight:     1.2,
		UnitPrice:       2.5,
		Value:           10,
		QtyUnit:         "EA",
	}}
	recs := Records(rows)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{
		"207N31", "Lamp housing", "8512.20.40", "MX", "1",
		"4", "1.2", "1.2", "2.5", "10", "EA",
	}, recs[0])
}

func TestNormalizeTable_ReordersAndCoerces(t *testing.T) {
	header := []string{"VALUE", "SKU", "EXTRA", "QUANTITY"}
	records := [][]string{
		{"10.50", "207N31", "note", "4"},
		{"garbage", "214N53", "", "not-a-number"},
	}

	outHeader, outRecords := NormalizeTable(header, records)
	assert.Equal(t, []string{"SKU", "QUANTITY", "VALUE", "EXTRA"}, outHeader)
	require.Len(t, outRecords, 2)
	assert.Equal(t, []string{"207N31", "4", "10.5", "note"}, outRecords[0])
	// unparseable numerics become 0
	assert.Equal(t, []string{"214N53", "0", "0", ""}, outRecords[1])
}

func TestNormalizeTable_ShortRows(t *testing.T) {
	header := []string{"SKU", "VALUE"}
	records := [][]string{{"207N31"}}

	_, outRecords := NormalizeTable(header, records)
	require.Len(t, outRecords, 1)
	assert.Equal(t, []string{"207N31", "0"}, outRecords[0])
}

func TestNormalizeTable_AllCanonicalPresent(t *testing.T) {
	outHeader, _ := NormalizeTable(Header(), nil)
	assert.Equal(t, constants.ColumnOrder, outHeader)
	assert.False(t, strings.Contains(strings.Join(outHeader, ","), "EXTRA"))
}
