package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hts-tools/invoice-processor/internal/entity"
)

func item(sku string, qty, unitPrice float64) entity.LineItem {
	return entity.LineItem{
		SKU:       sku,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Value:     qty * unitPrice,
		QtyUnit:   "EA",
	}
}

func TestBySKU_SumsNumerics(t *testing.T) {
	rows := []entity.LineItem{
		{SKU: "207N31", Description: "Lamp", Quantity: 4, NetWeight: 1.2, GrossWeight: 1.2, UnitPrice: 2.5, Value: 10},
		{SKU: "207N31", Description: "Lamp", Quantity: 6, NetWeight: 1.8, GrossWeight: 1.8, UnitPrice: 2.5, Value: 15},
	}
	out := BySKU(rows)
	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].Quantity)
	assert.Equal(t, 3.0, out[0].NetWeight)
	assert.Equal(t, 3.0, out[0].GrossWeight)
	assert.Equal(t, 25.0, out[0].Value)
	assert.Equal(t, 2.5, out[0].UnitPrice)
}

func TestBySKU_UnitPriceRecomputedFromValue(t *testing.T) {
	// differing unit prices: the result must satisfy VALUE/QUANTITY, not the
	// arithmetic mean of the inputs
	rows := []entity.LineItem{
		item("207N31", 1, 1.00),
		item("207N31", 9, 3.00),
	}
	out := BySKU(rows)
	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].Quantity)
	assert.Equal(t, 28.0, out[0].Value)
	assert.InDelta(t, 2.8, out[0].UnitPrice, 1e-9)
}

func TestBySKU_ZeroQuantityKeepsMean(t *testing.T) {
	rows := []entity.LineItem{
		item("207N31", 0, 2.00),
		item("207N31", 0, 4.00),
	}
	out := BySKU(rows)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].Quantity)
	assert.Equal(t, 3.0, out[0].UnitPrice)
}

func TestBySKU_SortedOrderAndDescriptives(t *testing.T) {
	rows := []entity.LineItem{
		{SKU: "B", Description: "second sku", HTS: "1111.11.11", Quantity: 1},
		{SKU: "A", Description: "first of A", CountryOfOrigin: "MX", PackageCount: "2", Quantity: 1},
		{SKU: "A", Description: "ignored later description", CountryOfOrigin: "CN", PackageCount: "9", Quantity: 1},
	}
	out := BySKU(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].SKU)
	assert.Equal(t, "B", out[1].SKU)
	assert.Equal(t, "first of A", out[0].Description)
	assert.Equal(t, "MX", out[0].CountryOfOrigin)
	assert.Equal(t, "2", out[0].PackageCount)
}

func TestBySKU_OutputSortedBySKU(t *testing.T) {
	// input order must not leak into the output: groups come out SKU-sorted
	rows := []entity.LineItem{
		item("ZZZ99", 1, 1),
		item("AAA11", 1, 1),
		item("MMM55", 1, 1),
	}
	out := BySKU(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "AAA11", out[0].SKU)
	assert.Equal(t, "MMM55", out[1].SKU)
	assert.Equal(t, "ZZZ99", out[2].SKU)
}

func TestBySKU_PreservesTotals(t *testing.T) {
	rows := []entity.LineItem{
		item("A", 2, 1.5),
		item("B", 3, 0.4),
		item("A", 5, 2.0),
		item("C", 1, 9.99),
	}
	var wantQty, wantValue float64
	for _, r := range rows {
		wantQty += r.Quantity
		wantValue += r.Value
	}

	out := BySKU(rows)
	var gotQty, gotValue float64
	for _, r := range out {
		gotQty += r.Quantity
		gotValue += r.Value
	}
	assert.InDelta(t, wantQty, gotQty, 1e-9)
	assert.InDelta(t, wantValue, gotValue, 1e-9)
}

func TestBySKU_Empty(t *testing.T) {
	out := BySKU(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
