package entity

import "github.com/hts-tools/invoice-processor/constants"

// Document is an uploaded file handle plus its declared kind.
// Immutable once created; files are removed only by age-based cleanup.
type Document struct {
	Path     string
	Filename string
	Kind     constants.FileKind
}

// Pair couples a paginated (PDF) document with its matched tabular
// companion. TXT is nil when no companion was matched.
type Pair struct {
	PDF Document
	TXT *Document
}
