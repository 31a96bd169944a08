package partno

import (
	"os"
	"strings"

	"github.com/hts-tools/invoice-processor/internal/tabular"
	"github.com/hts-tools/invoice-processor/internal/textextract"
)

// PartColumn is the part-number column in structured tabular exports.
const PartColumn = "PART"

// FromTabular pulls part numbers from a delimited file's PART column. When
// the file is not structured (or has no PART column) it falls back to shape
// extraction over the decoded text.
func FromTabular(path string) ([]string, error) {
	t, err := tabular.Read(path, '\t')
	if err == nil && t.HasColumn(PartColumn) {
		var parts []string
		for _, row := range t.Rows {
			p := t.Cell(row, PartColumn)
			if p != "" {
				parts = append(parts, p)
			}
		}
		return parts, nil
	}

	b, rerr := os.ReadFile(path)
	if rerr != nil {
		return nil, rerr
	}
	text, _ := textextract.DecodeBytes(b)
	return Extract(strings.TrimSpace(text), ""), nil
}
