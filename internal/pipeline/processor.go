// Package pipeline coordinates extraction, matching, record building,
// aggregation, and output writing. Each operation is synchronous and
// request-scoped; the only shared state between runs is the filesystem, and
// output filenames embed a timestamp to avoid collisions.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/aggregate"
	"github.com/hts-tools/invoice-processor/internal/common"
	"github.com/hts-tools/invoice-processor/internal/entity"
	"github.com/hts-tools/invoice-processor/internal/export"
	"github.com/hts-tools/invoice-processor/internal/fieldparse"
	"github.com/hts-tools/invoice-processor/internal/match"
	"github.com/hts-tools/invoice-processor/internal/records"
)

type Processor struct {
	logger    *slog.Logger
	builder   *records.Builder
	matcher   *match.Matcher
	outputDir string
	now       func() time.Time
}

func NewProcessor(builder *records.Builder, matcher *match.Matcher, outputDir string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		builder:   builder,
		matcher:   matcher,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// RunResult is the outcome of one processing run.
type RunResult struct {
	RunID          uuid.UUID
	InvoiceNumber  string // "" when none was supplied or detected
	Rows           []entity.LineItem
	Aggregated     []entity.LineItem
	ProcessedFile  string
	AggregatedFile string
	Summary        Summary
}

// ProcessFile builds canonical rows for a single document, inferring the
// kind from the file extension.
func (p *Processor) ProcessFile(ctx context.Context, path, invoiceFilter string) ([]entity.LineItem, constants.FileKind, error) {
	if path == "" {
		return nil, "", common.NewAppError("PROCESS_ERROR", "no data file provided", common.ErrInvalidInput)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, "", common.NewAppError("PROCESS_ERROR", "data file not found: "+path, common.ErrNotFound)
	}
	kind := constants.MapExtToKind(filepath.Ext(path))
	if kind == "" {
		return nil, "", common.NewAppError("PROCESS_ERROR", "invalid file type, expected .txt, .csv, or .pdf", common.ErrUnsupportedType)
	}
	rows, err := p.builder.Build(ctx, path, kind, invoiceFilter)
	if err != nil {
		return nil, kind, err
	}
	return rows, kind, nil
}

// Run processes one file end to end: build rows, aggregate, write the
// processed and aggregated CSVs, and summarize.
func (p *Processor) Run(ctx context.Context, path, invoiceFilter string) (*RunResult, error) {
	rows, kind, err := p.ProcessFile(ctx, path, invoiceFilter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.NewAppError("PROCESS_ERROR", "no data found for the specified invoice number", common.ErrNoData)
	}

	invoice := invoiceFilter
	if invoice == "" && kind == constants.PDF {
		invoice = p.detectInvoice(ctx, path)
	}

	return p.finish(rows, invoice, export.SuffixProcessed, export.SuffixAggregated)
}

// ProcessPairs builds the combined row set for matched PDF+TXT pairs. Every
// pair must carry its PDF; the TXT side is optional.
func (p *Processor) ProcessPairs(ctx context.Context, pairs []entity.Pair, invoiceFilter string) ([]entity.LineItem, string, error) {
	if len(pairs) == 0 {
		return nil, "", common.NewAppError("PROCESS_ERROR", "no file pairs provided", common.ErrInvalidInput)
	}

	var combined []entity.LineItem
	for _, pair := range pairs {
		if pair.PDF.Path == "" {
			return nil, "", common.NewAppError("PROCESS_ERROR", "PDF file is required for each pair", common.ErrInvalidInput)
		}
		pdfRows, err := p.builder.Build(ctx, pair.PDF.Path, constants.PDF, invoiceFilter)
		if err != nil {
			return nil, "", err
		}
		combined = append(combined, pdfRows...)

		if pair.TXT != nil {
			txtRows, err := p.builder.Build(ctx, pair.TXT.Path, pair.TXT.Kind, invoiceFilter)
			if err != nil {
				return nil, "", err
			}
			combined = append(combined, txtRows...)
		}
	}

	if len(combined) == 0 {
		return nil, "", common.NewAppError("PROCESS_ERROR", "no data found in any files", common.ErrNoData)
	}

	invoice := invoiceFilter
	if invoice == "" {
		invoice = p.detectInvoice(ctx, pairs[0].PDF.Path)
	}
	return combined, invoice, nil
}

// RunPairs processes matched pairs end to end and writes the combined
// processed and aggregated CSVs.
func (p *Processor) RunPairs(ctx context.Context, pairs []entity.Pair, invoiceFilter string) (*RunResult, error) {
	rows, invoice, err := p.ProcessPairs(ctx, pairs, invoiceFilter)
	if err != nil {
		return nil, err
	}
	return p.finish(rows, invoice, export.SuffixCombinedProcessed, export.SuffixCombinedAggregated)
}

// MatchDocuments pairs every PDF with its best tabular companion.
func (p *Processor) MatchDocuments(ctx context.Context, pdfDocs, txtDocs []entity.Document) ([]match.Result, error) {
	if len(pdfDocs) == 0 || len(txtDocs) == 0 {
		return nil, common.NewAppError("MATCH_ERROR", "both PDF and TXT files are required", common.ErrInvalidInput)
	}
	return p.matcher.Match(ctx, pdfDocs, txtDocs), nil
}

// detectInvoice extracts the invoice number from a PDF, best effort.
func (p *Processor) detectInvoice(ctx context.Context, pdfPath string) string {
	fields, err := p.builder.PDFFields(ctx, pdfPath)
	if err != nil {
		p.logger.Warn("pipeline.detect_invoice.failed", "path", pdfPath, "error", err)
		return ""
	}
	inv := fields.Get(fieldparse.FieldInvoiceNumber, "")
	if inv != "" {
		p.logger.Info("pipeline.detect_invoice.ok", "path", pdfPath, "invoice_number", inv)
	}
	return inv
}

func (p *Processor) finish(rows []entity.LineItem, invoice string, rawSuffix, aggSuffix export.Suffix) (*RunResult, error) {
	ts := p.now()
	aggregated := aggregate.BySKU(rows)

	processedFile := export.OutputFilename(ts, invoice, rawSuffix)
	if err := export.WriteLineItemsCSV(filepath.Join(p.outputDir, processedFile), rows); err != nil {
		return nil, common.WrapError(err, "write processed csv")
	}
	aggregatedFile := export.OutputFilename(ts, invoice, aggSuffix)
	if err := export.WriteLineItemsCSV(filepath.Join(p.outputDir, aggregatedFile), aggregated); err != nil {
		return nil, common.WrapError(err, "write aggregated csv")
	}

	summaryInvoice := invoice
	if summaryInvoice == "" {
		summaryInvoice = "ALL"
	}
	res := &RunResult{
		RunID:          uuid.New(),
		InvoiceNumber:  invoice,
		Rows:           rows,
		Aggregated:     aggregated,
		ProcessedFile:  processedFile,
		AggregatedFile: aggregatedFile,
		Summary:        NewSummary(rows, aggregated, summaryInvoice, ts),
	}
	p.logger.Info("pipeline.run.ok",
		"run_id", res.RunID.String(),
		"invoice_number", summaryInvoice,
		"rows", len(rows),
		"unique_skus", len(aggregated),
		"processed_file", processedFile,
		"aggregated_file", aggregatedFile,
	)
	return res, nil
}
