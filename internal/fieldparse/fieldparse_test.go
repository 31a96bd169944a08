package fieldparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_InvoiceNumberShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "Invoice Number: 074M-22006670", "074M-22006670"},
		{"undashed", "ref 074M22006670 enclosed", "074M22006670"},
		{"labeled fallback", "Invoice: INV-123", "INV-123"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := Parse(tc.text)
			assert.Equal(t, tc.want, fields[FieldInvoiceNumber])
		})
	}
}

func TestParse_FirstRuleWins(t *testing.T) {
	// the shape pattern must beat the labeled fallback even when the label
	// appears first in the text
	text := "Invoice: ABC-1\nsee 074M-22006670"
	fields := Parse(text)
	assert.Equal(t, "074M-22006670", fields[FieldInvoiceNumber])
}

func TestParse_Date(t *testing.T) {
	fields := Parse("Shipped 21Oct/25/2025 from MX")
	assert.Equal(t, "21Oct/25/2025", fields[FieldInvoiceDate])

	fields = Parse("Date: 2025-10-21")
	assert.Equal(t, "2025-10-21", fields[FieldInvoiceDate])
}

func TestParse_SellerLegalSuffix(t *testing.T) {
	fields := Parse("Lighting Components S. de RL de CV\nTotal: $5.00")
	assert.Contains(t, fields[FieldSellerName], "Lighting Components")

	fields = Parse("Exporter: Acme Fixtures")
	assert.Equal(t, "Acme Fixtures", fields[FieldSellerName])
}

func TestParse_TotalAndCurrency(t *testing.T) {
	fields := Parse("Currency: USD\nTotal: $12,345.67")
	assert.Equal(t, "12,345.67", fields[FieldTotalAmount])
	assert.Equal(t, "USD", fields[FieldCurrency])
}

func TestParse_CountryOriginShape(t *testing.T) {
	fields := Parse("MX NIO D 074M")
	assert.Equal(t, "MX", fields[FieldCountryOrigin])
}

func TestParse_AbsentFieldsAreMissing(t *testing.T) {
	fields := Parse("nothing useful here")
	_, ok := fields[FieldInvoiceNumber]
	assert.False(t, ok)
	_, ok = fields[FieldBuyerName]
	assert.False(t, ok)
}

func TestFieldsGet(t *testing.T) {
	f := Fields{FieldSellerName: "Acme"}
	assert.Equal(t, "Acme", f.Get(FieldSellerName, "Unknown"))
	assert.Equal(t, "Unknown", f.Get(FieldBuyerName, "Unknown"))
	f[FieldBuyerName] = "  "
	assert.Equal(t, "Unknown", f.Get(FieldBuyerName, "Unknown"))
}
