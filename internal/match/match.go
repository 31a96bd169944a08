// Package match pairs paginated invoice documents with the tabular file
// whose part-number set overlaps theirs the most. The pairing is a greedy
// per-document heuristic, not a global optimization.
package match

import (
	"context"
	"log/slog"

	"github.com/hts-tools/invoice-processor/internal/entity"
	"github.com/hts-tools/invoice-processor/internal/partno"
)

// FallbackScore is the sentinel for a structural fallback match: the PDF had
// no extractable part numbers, so the first available TXT was paired with it
// on no content evidence.
const FallbackScore = 1

// PartSource supplies part numbers per document, abstracted for testing.
type PartSource interface {
	PDFParts(ctx context.Context, path string) ([]string, error)
	TXTParts(ctx context.Context, path string) ([]string, error)
}

// Result is the pairing outcome for one PDF document.
type Result struct {
	PDF        entity.Document
	TXT        *entity.Document // nil when nothing scored above zero
	Score      int
	PDFParts   []string
	TXTParts   []string
	PDFHasText bool
}

type Matcher struct {
	source PartSource
	logger *slog.Logger
}

func NewMatcher(source PartSource, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{source: source, logger: logger}
}

// Match produces one Result per PDF, independent of the others. Ties keep
// the first-seen TXT: the comparison is strictly greater, never
// greater-or-equal, and downstream output depends on that exact tie-break.
func (m *Matcher) Match(ctx context.Context, pdfDocs, txtDocs []entity.Document) []Result {
	results := make([]Result, 0, len(pdfDocs))

	for _, pdf := range pdfDocs {
		pdfParts, err := m.source.PDFParts(ctx, pdf.Path)
		if err != nil {
			m.logger.Warn("match.pdfparts.failed", "path", pdf.Path, "error", err)
			pdfParts = nil
		}

		res := Result{
			PDF:        pdf,
			PDFParts:   pdfParts,
			PDFHasText: len(pdfParts) > 0,
		}

		if len(pdfParts) == 0 {
			// no content evidence: structural fallback to the first TXT
			if len(txtDocs) > 0 {
				first := txtDocs[0]
				res.TXT = &first
				res.Score = FallbackScore
				res.TXTParts = m.txtParts(ctx, first.Path)
				m.logger.Info("match.fallback", "pdf", pdf.Filename, "txt", first.Filename)
			}
			results = append(results, res)
			continue
		}

		pdfSet := normalizedSet(pdfParts)
		maxCount := 0
		for _, txt := range txtDocs {
			txtParts := m.txtParts(ctx, txt.Path)
			count := overlap(pdfSet, txtParts)
			if count > maxCount {
				maxCount = count
				t := txt
				res.TXT = &t
				res.Score = count
				res.TXTParts = txtParts
			}
		}
		if res.TXT == nil {
			m.logger.Info("match.none", "pdf", pdf.Filename, "pdf_parts", len(pdfParts))
		} else {
			m.logger.Info("match.ok", "pdf", pdf.Filename, "txt", res.TXT.Filename, "score", res.Score)
		}
		results = append(results, res)
	}
	return results
}

func (m *Matcher) txtParts(ctx context.Context, path string) []string {
	parts, err := m.source.TXTParts(ctx, path)
	if err != nil {
		m.logger.Warn("match.txtparts.failed", "path", path, "error", err)
		return nil
	}
	return parts
}

func normalizedSet(parts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[partno.Normalize(p)] = struct{}{}
	}
	return set
}

func overlap(pdfSet map[string]struct{}, txtParts []string) int {
	seen := make(map[string]struct{}, len(txtParts))
	count := 0
	for _, p := range txtParts {
		n := partno.Normalize(p)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := pdfSet[n]; ok {
			count++
		}
	}
	return count
}
