package textextract

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Method names recorded on extraction results.
const (
	MethodPDFText = "pdf-text"
	MethodPDFOCR  = "pdf-ocr"
	MethodPlain   = "plain"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr" | "plain"
	Encoding string // set for plain text
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: newExecRunner(logger), logger: logger}
}

// NewExtractorWithRunner wires a custom Runner; used to stub the external
// rasterize/OCR binaries in tests.
func NewExtractorWithRunner(cfg Config, r Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = r
	return e
}

// ExtractPlain reads a text file trying encodings in a fixed priority order.
func (e *Extractor) ExtractPlain(path string) (Result, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	text, encName := DecodeBytes(b)
	e.logger.Debug("textextract.plain.ok", "path", path, "encoding", encName, "bytes", len(b))
	return Result{
		Text:     strings.TrimSpace(text),
		Pages:    1,
		Method:   MethodPlain,
		Encoding: encName,
		Duration: time.Since(start),
	}, nil
}

// ExtractPDF pulls the embedded text layer page by page. When the document
// has no text layer it rasterizes each page and runs OCR instead. Extraction
// failure is never fatal: the result degrades to empty text with warnings.
func (e *Extractor) ExtractPDF(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	res := Result{Method: MethodPDFText}

	text, pages, err := e.pdfText(path)
	if err != nil {
		e.logger.Warn("textextract.pdftext.failed", "path", path, "error", err)
		res.Warnings = append(res.Warnings, err.Error())
		text = ""
	}
	if strings.TrimSpace(text) != "" {
		res.Text = strings.TrimSpace(text)
		res.Pages = pages
		res.Duration = time.Since(start)
		e.logger.Debug("textextract.pdftext.ok", "path", path, "pages", pages, "chars", len(res.Text))
		return res, nil
	}

	e.logger.Info("textextract.pdftext.empty", "path", path, "fallback", MethodPDFOCR)
	res.Method = MethodPDFOCR
	ocrText, ocrPages, warns, err := e.pdfOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		e.logger.Warn("textextract.pdfocr.failed", "path", path, "error", err)
		res.Warnings = append(res.Warnings, err.Error())
		res.Duration = time.Since(start)
		return res, nil
	}
	res.Text = strings.TrimSpace(ocrText)
	res.Pages = ocrPages
	res.Duration = time.Since(start)
	e.logger.Debug("textextract.pdfocr.ok", "path", path, "pages", ocrPages, "chars", len(res.Text))
	return res, nil
}
