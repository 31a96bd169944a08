package export

import (
	"fmt"
	"strings"
	"time"
)

// Suffix tags the flavor of an output file.
type Suffix string

const (
	SuffixProcessed          Suffix = "processed"
	SuffixAggregated         Suffix = "aggregated"
	SuffixCombinedProcessed  Suffix = "combined_processed"
	SuffixCombinedAggregated Suffix = "combined_aggregated"
)

// TimestampLayout matches the legacy output naming; do not change it,
// downstream tooling parses these filenames.
const TimestampLayout = "20060102_150405"

// SafeInvoice makes an invoice number path-safe, or "ALL" when unknown.
func SafeInvoice(invoice string) string {
	if invoice == "" {
		return "ALL"
	}
	r := strings.NewReplacer("/", "-", "\\", "-", " ", "_")
	return r.Replace(invoice)
}

// OutputFilename builds "{timestamp}_{safe_invoice_or_ALL}_{suffix}.csv".
func OutputFilename(ts time.Time, invoice string, suffix Suffix) string {
	return fmt.Sprintf("%s_%s_%s.csv", ts.Format(TimestampLayout), SafeInvoice(invoice), suffix)
}
