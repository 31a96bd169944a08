package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/entity"
)

// WriteXLSX writes rows to an XLSX workbook for download collaborators that
// want a spreadsheet rather than delimited text. Numeric columns are written
// as native numbers so the workbook sums without coercion.
func WriteXLSX(path string, rows []entity.LineItem) error {
	f := excelize.NewFile()
	const sheet = "LineItems"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range constants.ColumnOrder {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for n, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, n+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.SKU)
		write(2, r.Description)
		write(3, r.HTS)
		write(4, r.CountryOfOrigin)
		write(5, r.PackageCount)
		write(6, r.Quantity)
		write(7, r.NetWeight)
		write(8, r.GrossWeight)
		write(9, r.UnitPrice)
		write(10, r.Value)
		write(11, r.QtyUnit)
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // SKU
	_ = f.SetColWidth(sheet, "B", "B", 40) // description
	_ = f.SetColWidth(sheet, "C", "D", 18)
	_ = f.SetColWidth(sheet, "F", "J", 14) // numerics

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
