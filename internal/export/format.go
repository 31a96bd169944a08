// Package export renders line items as delimited text and XLSX workbooks
// with the canonical column order and plain-decimal numeric formatting.
package export

import (
	"strconv"
	"strings"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/entity"
)

// FormatNumber renders a float as a plain decimal: no scientific notation,
// trailing zeros and dangling decimal points stripped, exact zero as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Header returns a copy of the canonical column order.
func Header() []string {
	h := make([]string, len(constants.ColumnOrder))
	copy(h, constants.ColumnOrder)
	return h
}

// Records renders rows as formatted cells in canonical column order.
func Records(rows []entity.LineItem) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.SKU,
			r.Description,
			r.HTS,
			r.CountryOfOrigin,
			r.PackageCount,
			FormatNumber(r.Quantity),
			FormatNumber(r.NetWeight),
			FormatNumber(r.GrossWeight),
			FormatNumber(r.UnitPrice),
			FormatNumber(r.Value),
			r.QtyUnit,
		})
	}
	return out
}

// NormalizeTable reorders an arbitrary table into canonical column order,
// appending unexpected columns at the end, and coerces numeric columns:
// unparseable values become 0 and every numeric cell is re-rendered as a
// plain decimal.
func NormalizeTable(header []string, records [][]string) ([]string, [][]string) {
	present := make(map[string]int, len(header))
	for i, name := range header {
		present[name] = i
	}

	var outHeader []string
	var srcIndex []int
	for _, name := range constants.ColumnOrder {
		if i, ok := present[name]; ok {
			outHeader = append(outHeader, name)
			srcIndex = append(srcIndex, i)
		}
	}
	for i, name := range header {
		if !isCanonical(name) {
			outHeader = append(outHeader, name)
			srcIndex = append(srcIndex, i)
		}
	}

	outRecords := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(outHeader))
		for j, i := range srcIndex {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			if _, numeric := constants.NumericColumns[outHeader[j]]; numeric {
				v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil {
					v = 0
				}
				cell = FormatNumber(v)
			}
			row[j] = cell
		}
		outRecords = append(outRecords, row)
	}
	return outHeader, outRecords
}

func isCanonical(name string) bool {
	for _, c := range constants.ColumnOrder {
		if c == name {
			return true
		}
	}
	return false
}
