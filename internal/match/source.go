package match

import (
	"context"
	"log/slog"

	"github.com/hts-tools/invoice-processor/internal/partno"
	"github.com/hts-tools/invoice-processor/internal/textextract"
)

// ContentSource is the production PartSource: PDFs go through text
// extraction (with OCR fallback), TXT files through the PART column reader.
type ContentSource struct {
	extract *textextract.Extractor
	logger  *slog.Logger
}

func NewContentSource(ex *textextract.Extractor, logger *slog.Logger) *ContentSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentSource{extract: ex, logger: logger}
}

func (s *ContentSource) PDFParts(ctx context.Context, path string) ([]string, error) {
	res, err := s.extract.ExtractPDF(ctx, path)
	if err != nil {
		return nil, err
	}
	// no invoice-number exclusion here: matching compares raw candidate sets
	return partno.Extract(res.Text, ""), nil
}

func (s *ContentSource) TXTParts(_ context.Context, path string) ([]string, error) {
	return partno.FromTabular(path)
}
