package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hts-tools/invoice-processor/internal/common"
	"github.com/hts-tools/invoice-processor/internal/entity"
	"github.com/hts-tools/invoice-processor/internal/export"
	"github.com/hts-tools/invoice-processor/internal/housekeeping"
	"github.com/hts-tools/invoice-processor/internal/match"
	"github.com/hts-tools/invoice-processor/internal/pipeline"
	"github.com/hts-tools/invoice-processor/internal/records"
	"github.com/hts-tools/invoice-processor/internal/textextract"
)

var (
	flagInvoice string
	flagXLSX    bool
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	builder := records.NewBuilder(extractor, logger)
	matcher := match.NewMatcher(match.NewContentSource(extractor, logger), logger)
	proc := pipeline.NewProcessor(builder, matcher, cfg.Dirs.OutputDir, logger)

	root := &cobra.Command{
		Use:           "invproc",
		Short:         "Commercial invoice processing pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	processCmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process one invoice file into processed and aggregated CSVs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(cfg.Dirs.OutputDir, 0o755); err != nil {
				return err
			}
			res, err := proc.Run(cmd.Context(), args[0], flagInvoice)
			if err != nil {
				return err
			}
			if flagXLSX {
				xlsxPath := filepath.Join(cfg.Dirs.OutputDir, res.ProcessedFile[:len(res.ProcessedFile)-len(".csv")]+".xlsx")
				if err := export.WriteXLSX(xlsxPath, res.Rows); err != nil {
					return err
				}
			}
			return printJSON(cmd, res.Summary)
		},
	}
	processCmd.Flags().StringVar(&flagInvoice, "invoice", "", "filter rows to this invoice number")
	processCmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "also write an XLSX workbook")

	matchCmd := &cobra.Command{
		Use:   "match <dir>",
		Short: "Match PDFs in a directory with their tabular companions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfDocs, txtDocs, err := pipeline.ScanDir(args[0])
			if err != nil {
				return err
			}
			results, err := proc.MatchDocuments(cmd.Context(), pdfDocs, txtDocs)
			if err != nil {
				return err
			}
			for _, r := range results {
				txtName := "<none>"
				if r.TXT != nil {
					txtName = r.TXT.Filename
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (score %d)\n", r.PDF.Filename, txtName, r.Score)
			}
			return nil
		},
	}

	combineCmd := &cobra.Command{
		Use:   "combine <dir>",
		Short: "Match and process every PDF+TXT pair in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfDocs, txtDocs, err := pipeline.ScanDir(args[0])
			if err != nil {
				return err
			}
			results, err := proc.MatchDocuments(cmd.Context(), pdfDocs, txtDocs)
			if err != nil {
				return err
			}
			pairs := make([]entity.Pair, 0, len(results))
			for _, r := range results {
				pairs = append(pairs, entity.Pair{PDF: r.PDF, TXT: r.TXT})
			}
			if err := os.MkdirAll(cfg.Dirs.OutputDir, 0o755); err != nil {
				return err
			}
			res, err := proc.RunPairs(cmd.Context(), pairs, flagInvoice)
			if err != nil {
				return err
			}
			return printJSON(cmd, res.Summary)
		},
	}
	combineCmd.Flags().StringVar(&flagInvoice, "invoice", "", "filter rows to this invoice number")

	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove aged files from the upload and output directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			total := 0
			var freed int64
			for _, dir := range []string{cfg.Dirs.UploadDir, cfg.Dirs.OutputDir} {
				n, b, err := housekeeping.CleanupDir(dir, cfg.Retention.MaxAge, logger)
				if err != nil {
					return err
				}
				total += n
				freed += b
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d files (%.2f MB)\n", total, float64(freed)/(1<<20))
			return nil
		},
	}

	root.AddCommand(processCmd, matchCmd, combineCmd, cleanupCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
