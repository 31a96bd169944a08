package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hts-tools/invoice-processor/internal/entity"
)

// WriteCSV writes a table to path. The output re-reads as numeric by any
// standard CSV reader: numeric cells are plain decimals, never scientific.
func WriteCSV(path string, header []string, records [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteLineItemsCSV writes rows in canonical order and formatting.
func WriteLineItemsCSV(path string, rows []entity.LineItem) error {
	return WriteCSV(path, Header(), Records(rows))
}
