package entity

// LineItem is the canonical invoice row. Rows are value types; nothing
// mutates one after the builder produces it, aggregation yields new rows.
type LineItem struct {
	SKU             string
	Description     string
	HTS             string
	CountryOfOrigin string
	PackageCount    string // blank or a small count, kept as text
	Quantity        float64
	NetWeight       float64
	GrossWeight     float64
	UnitPrice       float64
	Value           float64
	QtyUnit         string
}
