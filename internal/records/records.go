// Package records turns documents into canonical line-item rows. Behavior is
// per declared kind: paginated documents yield metadata only (their line
// items arrive via the paired tabular file), tabular documents yield one row
// per data row, and loose text yields a single synthetic summary row.
package records

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/common"
	"github.com/hts-tools/invoice-processor/internal/entity"
	"github.com/hts-tools/invoice-processor/internal/fieldparse"
	"github.com/hts-tools/invoice-processor/internal/tabular"
	"github.com/hts-tools/invoice-processor/internal/textextract"
)

// Source column names in structured tabular exports.
const (
	colPart     = "PART"
	colPartDesc = "PART_DESC"
	colHTS      = "HTTS"
	colCountry  = "C/N"
	colQuantity = "quantity"
	colAmount   = "AMT"
	colWeight   = "WEIGHT"
	colInvoice  = "invoice_nbr"
)

// requiredColumns must all be present for a tab-delimited file to count as
// structured data; otherwise it degrades to loose-text synthesis.
var requiredColumns = []string{
	colPart, colPartDesc, colHTS, colCountry, colQuantity, colAmount, colWeight,
}

type Builder struct {
	extract *textextract.Extractor
	logger  *slog.Logger
}

func NewBuilder(ex *textextract.Extractor, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{extract: ex, logger: logger}
}

// Build produces canonical rows for the document at path. invoiceFilter, when
// non-empty, keeps only structured rows whose invoice_nbr matches exactly.
func (b *Builder) Build(ctx context.Context, path string, kind constants.FileKind, invoiceFilter string) ([]entity.LineItem, error) {
	switch kind {
	case constants.PDF:
		return b.buildPDF(ctx, path)
	case constants.TXT:
		return b.buildTXT(path, invoiceFilter)
	case constants.CSV:
		return b.buildCSV(path, invoiceFilter)
	default:
		return nil, common.NewAppError("BUILD_ERROR", "unsupported file kind: "+string(kind), common.ErrUnsupportedType)
	}
}

// buildPDF parses invoice metadata for the logs and returns no rows: PDFs
// carry header data only, never line items. The paired TXT provides those.
func (b *Builder) buildPDF(ctx context.Context, path string) ([]entity.LineItem, error) {
	res, err := b.extract.ExtractPDF(ctx, path)
	if err != nil {
		return nil, err
	}
	fields := fieldparse.Parse(res.Text)
	b.logger.Info("records.pdf.metadata",
		"path", path,
		"invoice_number", fields.Get(fieldparse.FieldInvoiceNumber, constants.NotAvailable),
		"seller", fields.Get(fieldparse.FieldSellerName, "Unknown"),
		"country", fields.Get(fieldparse.FieldCountryOrigin, constants.NotAvailable),
	)
	return []entity.LineItem{}, nil
}

func (b *Builder) buildTXT(path, invoiceFilter string) ([]entity.LineItem, error) {
	t, err := tabular.Read(path, '\t')
	if err != nil || !hasRequiredColumns(t, invoiceFilter != "") {
		if err != nil {
			b.logger.Info("records.txt.unstructured", "path", path, "error", err)
		} else {
			b.logger.Info("records.txt.unstructured", "path", path, "error", "missing columns")
		}
		return b.buildLoose(path)
	}
	b.logger.Debug("records.txt.structured", "path", path, "encoding", t.Encoding, "rows", len(t.Rows))
	return structuredRows(t, invoiceFilter), nil
}

// buildCSV is lenient about columns: absent cells map to empty strings and
// zero quantities rather than forcing the loose-text path.
func (b *Builder) buildCSV(path, invoiceFilter string) ([]entity.LineItem, error) {
	t, err := tabular.Read(path, ',')
	if err != nil {
		b.logger.Info("records.csv.unstructured", "path", path, "error", err)
		return b.buildLoose(path)
	}
	return structuredRows(t, invoiceFilter), nil
}

// BuildLoose synthesizes a single summary row from unstructured text. Used
// directly for loose-text documents and as the tabular fallback.
func (b *Builder) BuildLoose(path string) ([]entity.LineItem, error) {
	return b.buildLoose(path)
}

func (b *Builder) buildLoose(path string) ([]entity.LineItem, error) {
	var text string
	res, err := b.extract.ExtractPlain(path)
	if err != nil {
		// unreadable file degrades to an empty-field summary row
		b.logger.Warn("records.loose.read_failed", "path", path, "error", err)
	} else {
		text = res.Text
	}
	fields := fieldparse.Parse(text)

	total := parseFloat(strings.ReplaceAll(fields.Get(fieldparse.FieldTotalAmount, ""), ",", ""))
	row := entity.LineItem{
		SKU:             fields.Get(fieldparse.FieldInvoiceNumber, constants.NotAvailable),
		Description:     "Invoice from " + fields.Get(fieldparse.FieldSellerName, "Unknown"),
		HTS:             constants.NotAvailable,
		CountryOfOrigin: fields.Get(fieldparse.FieldCountryOrigin, constants.NotAvailable),
		PackageCount:    "1",
		Quantity:        1,
		UnitPrice:       total,
		Value:           total,
		QtyUnit:         constants.QtyUnitEach,
	}
	return []entity.LineItem{row}, nil
}

// PDFFields extracts and parses the header fields of a PDF, used to detect
// the invoice number when the caller did not supply one.
func (b *Builder) PDFFields(ctx context.Context, path string) (fieldparse.Fields, error) {
	res, err := b.extract.ExtractPDF(ctx, path)
	if err != nil {
		return nil, err
	}
	return fieldparse.Parse(res.Text), nil
}

func hasRequiredColumns(t *tabular.Table, needInvoice bool) bool {
	for _, c := range requiredColumns {
		if !t.HasColumn(c) {
			return false
		}
	}
	if needInvoice && !t.HasColumn(colInvoice) {
		return false
	}
	return true
}

func structuredRows(t *tabular.Table, invoiceFilter string) []entity.LineItem {
	rows := make([]entity.LineItem, 0, len(t.Rows))
	for _, r := range t.Rows {
		if invoiceFilter != "" && t.Cell(r, colInvoice) != invoiceFilter {
			continue
		}
		qty := parseFloat(t.Cell(r, colQuantity))
		unitPrice := parseFloat(t.Cell(r, colAmount))
		weight := parseFloat(t.Cell(r, colWeight))

		rows = append(rows, entity.LineItem{
			SKU:             t.Cell(r, colPart),
			Description:     t.Cell(r, colPartDesc),
			HTS:             t.Cell(r, colHTS),
			CountryOfOrigin: t.Cell(r, colCountry),
			PackageCount:    "",
			Quantity:        qty,
			NetWeight:       weight,
			GrossWeight:     weight,
			UnitPrice:       unitPrice,
			Value:           qty * unitPrice,
			QtyUnit:         constants.QtyUnitEach,
		})
	}
	return rows
}

// parseFloat defaults to 0.0 for missing or unparseable numerics.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
