package pipeline

import (
	"sort"
	"time"

	"github.com/hts-tools/invoice-processor/internal/entity"
)

// Summary carries per-run statistics for callers and logs.
type Summary struct {
	InvoiceNumber    string             `json:"invoice_number"`
	Timestamp        string             `json:"timestamp"`
	TotalLines       int                `json:"total_lines"`
	TotalQuantity    float64            `json:"total_quantity"`
	TotalNetWeight   float64            `json:"total_net_weight"`
	TotalGrossWeight float64            `json:"total_gross_weight"`
	TotalValue       float64            `json:"total_value"`
	UniqueHTSCodes   int                `json:"unique_hts_codes"`
	UniqueSKUs       int                `json:"unique_skus"`
	Countries        map[string]int     `json:"countries"`
	TopHTSCodes      map[string]float64 `json:"top_hts_codes"`
	QuantityBySKU    map[string]float64 `json:"quantity_by_sku"`
	Aggregated       AggregatedSummary  `json:"aggregated"`
}

// AggregatedSummary summarizes the per-SKU rollup.
type AggregatedSummary struct {
	TotalLines    int     `json:"total_lines"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
	UniqueSKUs    int     `json:"unique_skus"`
}

const topHTSCount = 5

// NewSummary computes run statistics over the raw and aggregated row sets.
func NewSummary(rows, aggregated []entity.LineItem, invoiceNumber string, ts time.Time) Summary {
	s := Summary{
		InvoiceNumber: invoiceNumber,
		Timestamp:     ts.UTC().Format(time.RFC3339),
		TotalLines:    len(rows),
		Countries:     make(map[string]int),
		QuantityBySKU: make(map[string]float64),
	}

	htsValues := make(map[string]float64)
	skus := make(map[string]struct{})
	for _, r := range rows {
		s.TotalQuantity += r.Quantity
		s.TotalNetWeight += r.NetWeight
		s.TotalGrossWeight += r.GrossWeight
		s.TotalValue += r.Value
		s.Countries[r.CountryOfOrigin]++
		s.QuantityBySKU[r.SKU] += r.Quantity
		htsValues[r.HTS] += r.Value
		skus[r.SKU] = struct{}{}
	}
	s.UniqueHTSCodes = len(htsValues)
	s.UniqueSKUs = len(skus)
	s.TopHTSCodes = topByValue(htsValues, topHTSCount)

	for _, r := range aggregated {
		s.Aggregated.TotalQuantity += r.Quantity
		s.Aggregated.TotalValue += r.Value
	}
	s.Aggregated.TotalLines = len(aggregated)
	s.Aggregated.UniqueSKUs = len(aggregated)

	return s
}

// topByValue keeps the n largest entries, ties broken by key for
// deterministic output.
func topByValue(values map[string]float64, n int) map[string]float64 {
	type kv struct {
		key   string
		value float64
	}
	all := make([]kv, 0, len(values))
	for k, v := range values {
		all = append(all, kv{k, v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].value != all[j].value {
			return all[i].value > all[j].value
		}
		return all[i].key < all[j].key
	})
	if len(all) > n {
		all = all[:n]
	}
	out := make(map[string]float64, len(all))
	for _, e := range all {
		out[e.key] = e.value
	}
	return out
}
