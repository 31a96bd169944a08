// Package aggregate collapses line items by SKU. Quantities, weights, and
// values sum; descriptive columns keep the first occurrence in each group
// with no conflict detection (a documented limitation of the format, not a
// defect to fix here).
package aggregate

import (
	"sort"

	"github.com/hts-tools/invoice-processor/internal/entity"
)

type group struct {
	item         entity.LineItem
	unitPriceSum float64
	count        int
}

// BySKU returns one row per unique SKU, sorted by SKU. UNIT PRICE
// is the group mean, recomputed as VALUE/QUANTITY whenever the summed
// quantity is positive (the mean survives only for zero-quantity groups, to
// avoid dividing by zero).
func BySKU(rows []entity.LineItem) []entity.LineItem {
	if len(rows) == 0 {
		return []entity.LineItem{}
	}

	groups := make(map[string]*group)

	for _, r := range rows {
		g, ok := groups[r.SKU]
		if !ok {
			g = &group{item: r}
			g.item.Quantity = 0
			g.item.NetWeight = 0
			g.item.GrossWeight = 0
			g.item.Value = 0
			groups[r.SKU] = g
		}
		g.item.Quantity += r.Quantity
		g.item.NetWeight += r.NetWeight
		g.item.GrossWeight += r.GrossWeight
		g.item.Value += r.Value
		g.unitPriceSum += r.UnitPrice
		g.count++
	}

	order := make([]string, 0, len(groups))
	for sku := range groups {
		order = append(order, sku)
	}
	sort.Strings(order)

	out := make([]entity.LineItem, 0, len(order))
	for _, sku := range order {
		g := groups[sku]
		g.item.UnitPrice = g.unitPriceSum / float64(g.count)
		if g.item.Quantity > 0 {
			g.item.UnitPrice = g.item.Value / g.item.Quantity
		}
		out = append(out, g.item)
	}
	return out
}
