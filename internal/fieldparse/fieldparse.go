// Package fieldparse pulls invoice header fields out of unstructured text
// with an ordered rule table: per field, the first pattern that matches wins
// and its first capture group (trimmed) becomes the value.
package fieldparse

import (
	"regexp"
	"strings"
)

// Semantic field names.
const (
	FieldInvoiceNumber      = "invoice_number"
	FieldInvoiceDate        = "invoice_date"
	FieldSellerName         = "seller_name"
	FieldBuyerName          = "buyer_name"
	FieldTotalAmount        = "total_amount"
	FieldCurrency           = "currency"
	FieldCountryOrigin      = "country_origin"
	FieldCountryDestination = "country_destination"
	FieldTerms              = "terms"
)

// Fields maps field name -> extracted value. A field is simply absent when
// no pattern matched; that is a normal outcome, not an error.
type Fields map[string]string

// Get returns the field value or the given fallback when absent or blank.
func (f Fields) Get(name, fallback string) string {
	if v, ok := f[name]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

type fieldRule struct {
	name     string
	patterns []*regexp.Regexp
}

// rules are evaluated in order; within a field the first match wins and the
// remaining patterns are skipped. Shape patterns come first, labeled
// fallbacks last.
var rules = []fieldRule{
	{FieldInvoiceNumber, compile(
		`(\d{3,}[A-Z]-\d{8,})`,        // 074M-22005749
		`(\d{3,}[A-Z]\d{8,})`,         // 074M22005749
		`Invoice[:\s#]*([A-Z0-9-]+)`,  // labeled fallback
	)},
	{FieldInvoiceDate, compile(
		`(\d{1,2}[A-Za-z]{3}/\d{2}/\d{4})`, // 21Oct/25/2025
		`Date[:\s]*([0-9/-]+)`,
	)},
	{FieldSellerName, compile(
		`([A-Za-z\s&.,]+(?:S\.\s*de\s*RL\s*de\s*CV|INC|CORP|LLC|LTD))`, // legal-entity suffix
		`(?:Seller|From|Exporter)[:\s]*([^\n]+)`,
	)},
	{FieldBuyerName, compile(
		`(?:Buyer|To|Importer)[:\s]*([^\n]+)`,
	)},
	{FieldTotalAmount, compile(
		`Total[:\s]*\$?([0-9,]+\.?[0-9]*)`,
		`\$([0-9,]+\.?[0-9]*)`, // any dollar amount
	)},
	{FieldCurrency, compile(
		`Currency[:\s]*([A-Z]{3})`,
		`\b(USD|MXN|CAD)\b`,
	)},
	{FieldCountryOrigin, compile(
		`([A-Z]{2})\s+[A-Z]{3}\s+[A-Z]`, // "MX NIO D" style header line
		`(?:Country of Origin|Origin)[:\s]*([^\n]+)`,
	)},
	{FieldCountryDestination, compile(
		`(?:Country of Destination|Destination)[:\s]*([^\n]+)`,
	)},
	{FieldTerms, compile(
		`(?:Terms|Payment Terms|INCOTERM)[:\s]*([^\n]+)`,
	)},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// Parse extracts every field it can from text.
func Parse(text string) Fields {
	fields := make(Fields)
	for _, rule := range rules {
		for _, re := range rule.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			fields[rule.name] = strings.TrimSpace(m[1])
			break
		}
	}
	return fields
}
