// Package tabular reads delimited text files into header + rows, reusing the
// encoding fallback chain so Latin-1 and UTF-16 exports parse the same as
// UTF-8 ones.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/hts-tools/invoice-processor/internal/textextract"
)

// Table is a parsed delimited file.
type Table struct {
	Header   []string
	Rows     [][]string
	Encoding string
	colIndex map[string]int
}

// Read parses the file at path with the given delimiter. A file whose rows
// are ragged or that has no header row is a read failure, which callers
// treat as "not structured data".
func Read(path string, comma rune) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, encName := textextract.DecodeBytes(b)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %q: empty file", path)
	}

	t := &Table{
		Header:   records[0],
		Rows:     records[1:],
		Encoding: encName,
		colIndex: make(map[string]int, len(records[0])),
	}
	for i, name := range t.Header {
		t.colIndex[strings.TrimSpace(name)] = i
	}
	return t, nil
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Cell returns the trimmed value of the named column in the given row, or ""
// when the column is absent or the row is short.
func (t *Table) Cell(row []string, name string) string {
	i, ok := t.colIndex[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
