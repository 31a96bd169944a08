package constants

// Canonical output column names. Downstream consumers key on these exact
// strings, so they are never renamed.
const (
	ColSKU          = "SKU"
	ColDescription  = "DESCRIPTION"
	ColHTS          = "HTS"
	ColCountry      = "COUNTRY OF ORIGIN"
	ColPackageCount = "NO. OF PACKAGE"
	ColQuantity     = "QUANTITY"
	ColNetWeight    = "NET WEIGHT"
	ColGrossWeight  = "GROSS WEIGHT"
	ColUnitPrice    = "UNIT PRICE"
	ColValue        = "VALUE"
	ColQtyUnit      = "QTY UNIT"
)

// ColumnOrder is the canonical column order for all emitted tables.
// Unknown columns are appended after these.
var ColumnOrder = []string{
	ColSKU,
	ColDescription,
	ColHTS,
	ColCountry,
	ColPackageCount,
	ColQuantity,
	ColNetWeight,
	ColGrossWeight,
	ColUnitPrice,
	ColValue,
	ColQtyUnit,
}

// NumericColumns are coerced to float and rendered as plain decimals on output.
var NumericColumns = map[string]struct{}{
	ColQuantity:    {},
	ColNetWeight:   {},
	ColGrossWeight: {},
	ColUnitPrice:   {},
	ColValue:       {},
}

// QtyUnitEach marks unit-each quantities on generated rows.
const QtyUnitEach = "EA"

// NotAvailable is the placeholder for fields the parser could not detect.
const NotAvailable = "N/A"
