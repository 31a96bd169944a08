// Package partno finds candidate part numbers in document text. Candidates
// come from shape patterns alone, so the set is filtered against the owning
// document's invoice number and a static denylist before use.
package partno

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hts-tools/invoice-processor/constants"
)

// Shape patterns are matched case-sensitively: real part numbers on these
// documents are upper case, and lowering the bar floods the set with prose.
var shapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*([A-Z0-9]{6,7})\b`),            // *214N53, *183NK5
	regexp.MustCompile(`\b([A-Z]{2,}\d{4,})\b`),          // COMP001, MEM002
	regexp.MustCompile(`\b(\d{4,}[A-Z]{2,})\b`),          // 001COMP, 002MEM
	regexp.MustCompile(`\b([A-Z]{1,3}\d{3,6})\b`),        // A123, AB1234
	regexp.MustCompile(`\b(\d{3,6}[A-Z]{1,3})\b`),        // 123A, 1234AB
	regexp.MustCompile(`\b([A-Z]{2,3}\d{3,4}[A-Z]{1,2})\b`), // 214N53, 222A7C
	regexp.MustCompile(`\b(\d{3,4}[A-Z]{2,3}\d{1,2})\b`),    // 253G2M, 2575L7
}

var (
	longDigitRun = regexp.MustCompile(`(\d{8,})`)
	prefixRun    = regexp.MustCompile(`^(\d{3,}[A-Z]+)`)
)

// Normalize strips asterisks and uppercases for set comparison.
func Normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "*", ""))
}

// Extract returns the filtered, deduplicated part-number candidates found in
// text, sorted for deterministic output. When invoiceNumber is non-empty, the
// invoice number and its variants (dash-stripped form, embedded long digit
// run, alphanumeric prefix run) are excluded from the result.
func Extract(text, invoiceNumber string) []string {
	seen := make(map[string]struct{})
	for _, re := range shapePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			seen[m[1]] = struct{}{}
		}
	}

	exclusions := invoiceExclusions(invoiceNumber)

	var out []string
	for cand := range seen {
		if excludedByInvoice(cand, exclusions) {
			continue
		}
		if denylisted(cand) {
			continue
		}
		// short pure-numeric strings are too ambiguous to be identifiers
		if len(cand) <= 4 && isDigits(cand) {
			continue
		}
		out = append(out, cand)
	}
	sort.Strings(out)
	return out
}

// invoiceExclusions builds the variant set for a known invoice number.
func invoiceExclusions(invoiceNumber string) []string {
	if invoiceNumber == "" {
		return nil
	}
	upper := strings.ToUpper(invoiceNumber)
	exclusions := []string{
		upper,
		strings.ReplaceAll(upper, "-", ""),
	}
	if m := longDigitRun.FindStringSubmatch(invoiceNumber); m != nil {
		exclusions = append(exclusions, m[1])
	}
	if m := prefixRun.FindStringSubmatch(upper); m != nil {
		exclusions = append(exclusions, m[1])
	}
	return exclusions
}

// excludedByInvoice drops a candidate that contains, is contained in, or
// equals any invoice-number variant, case-insensitively.
func excludedByInvoice(cand string, exclusions []string) bool {
	if len(exclusions) == 0 {
		return false
	}
	upper := strings.ToUpper(cand)
	for _, ex := range exclusions {
		if strings.Contains(upper, ex) || strings.Contains(ex, upper) {
			return true
		}
	}
	return false
}

func denylisted(cand string) bool {
	upper := strings.ToUpper(cand)
	for _, token := range constants.PartDenylist {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
