package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hts-tools/invoice-processor/internal/aggregate"
	"github.com/hts-tools/invoice-processor/internal/entity"
)

func TestNewSummary(t *testing.T) {
	rows := []entity.LineItem{
		{SKU: "A", HTS: "1111.11.11", CountryOfOrigin: "MX", Quantity: 4, NetWeight: 1, GrossWeight: 1, Value: 10},
		{SKU: "A", HTS: "1111.11.11", CountryOfOrigin: "MX", Quantity: 6, NetWeight: 2, GrossWeight: 2, Value: 15},
		{SKU: "B", HTS: "2222.22.22", CountryOfOrigin: "CN", Quantity: 1, NetWeight: 0.5, GrossWeight: 0.5, Value: 100},
	}
	agg := aggregate.BySKU(rows)
	ts := time.Date(2025, 10, 21, 14, 30, 5, 0, time.UTC)

	s := NewSummary(rows, agg, "074M-22006670", ts)

	assert.Equal(t, "074M-22006670", s.InvoiceNumber)
	assert.Equal(t, "2025-10-21T14:30:05Z", s.Timestamp)
	assert.Equal(t, 3, s.TotalLines)
	assert.Equal(t, 11.0, s.TotalQuantity)
	assert.Equal(t, 3.5, s.TotalNetWeight)
	assert.Equal(t, 125.0, s.TotalValue)
	assert.Equal(t, 2, s.UniqueHTSCodes)
	assert.Equal(t, 2, s.UniqueSKUs)
	assert.Equal(t, map[string]int{"MX": 2, "CN": 1}, s.Countries)
	assert.Equal(t, map[string]float64{"A": 10, "B": 1}, s.QuantityBySKU)
	assert.Equal(t, map[string]float64{"1111.11.11": 25, "2222.22.22": 100}, s.TopHTSCodes)

	assert.Equal(t, 2, s.Aggregated.TotalLines)
	assert.Equal(t, 11.0, s.Aggregated.TotalQuantity)
	assert.Equal(t, 125.0, s.Aggregated.TotalValue)
	assert.Equal(t, 2, s.Aggregated.UniqueSKUs)
}

func TestNewSummary_TopHTSKeepsLargest(t *testing.T) {
	var rows []entity.LineItem
	codes := []string{"01", "02", "03", "04", "05", "06", "07"}
	for i, c := range codes {
		rows = append(rows, entity.LineItem{SKU: c, HTS: c, Value: float64(i + 1)})
	}

	s := NewSummary(rows, nil, "ALL", time.Now())
	require.Len(t, s.TopHTSCodes, 5)
	// the two smallest codes fall off
	assert.NotContains(t, s.TopHTSCodes, "01")
	assert.NotContains(t, s.TopHTSCodes, "02")
	assert.Equal(t, 7.0, s.TopHTSCodes["07"])
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(nil, nil, "ALL", time.Now())
	assert.Zero(t, s.TotalLines)
	assert.Empty(t, s.Countries)
	assert.Empty(t, s.TopHTSCodes)
}
