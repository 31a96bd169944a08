package constants

import "strings"

// FileKind is the declared document kind driving pipeline behavior.
type FileKind string

// Stable values (embedded in output filenames and logs).
const (
	PDF FileKind = "PDF" // paginated: metadata only, line items come from a paired TXT
	TXT FileKind = "TXT" // tab-delimited table, loose text fallback
	CSV FileKind = "CSV" // comma-delimited table
)

// AllowedExtensions holds the file extensions accepted for processing.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
	"csv": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a normalized extension to its file kind.
// Returns "" for unsupported extensions.
func MapExtToKind(ext string) FileKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	case "csv":
		return CSV
	default:
		return ""
	}
}
