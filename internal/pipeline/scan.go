package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hts-tools/invoice-processor/constants"
	"github.com/hts-tools/invoice-processor/internal/common"
	"github.com/hts-tools/invoice-processor/internal/entity"
)

// ScanDir walks root and buckets supported files into paginated (PDF) and
// tabular (TXT) documents for matching. Hidden files and directories are
// skipped.
func ScanDir(root string) (pdfDocs, txtDocs []entity.Document, err error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, common.NewAppError("SCAN_ERROR", "root path is required", common.ErrInvalidInput)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isHidden(d.Name()) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		doc := entity.Document{
			Path:     path,
			Filename: d.Name(),
			Kind:     constants.MapExtToKind(filepath.Ext(path)),
		}
		switch doc.Kind {
		case constants.PDF:
			pdfDocs = append(pdfDocs, doc)
		case constants.TXT:
			txtDocs = append(txtDocs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, nil, common.WrapError(err, "walk")
	}
	return pdfDocs, txtDocs, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
