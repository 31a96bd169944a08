package constants

// PartDenylist holds tokens that look like part numbers under the shape
// patterns but never are: currency codes, logistics boilerplate, location
// names, material terms, and a handful of recurring document artifacts.
// A candidate containing any of these (case-insensitive) is dropped.
var PartDenylist = []string{
	"USD", "FOB", "NET", "TOTAL", "DATE", "INVOICE", "QUANTITY", "MX", "US",
	"PAGE", "ENTRY", "PORT", "VALUE", "RATE", "DUTY", "PACKING", "WEIGHT",
	"ORIGIN", "DESTINATION", "CURRENCY", "TERMS", "PAYMENT", "FREIGHT",
	"CARRIER", "TRUCK", "CHARGE", "INCOTERM", "RECORD", "IMPORTER",
	"SUMMARY", "DESCRIPTION", "CONTROLLERS", "SENSOR", "RELAY", "FIXTURE",
	"LIGHTING", "LIGHT", "WALL", "CEILING", "MOTION", "OCCUPATION",
	"PROGRAMMABLE", "PALLETS", "BUNDLES", "PACK", "UNIT", "TYPE",
	"NUMBER", "PART", "GROSS", "LOCAL", "ESTIMATED", "PKGS", "DUTIABLE",
	"VENDOR", "BRANDS", "ACUITY", "CALIFORNIA", "TEXAS", "GEORGIA",
	"ATLANTA", "LAREDO", "GUADALUPE", "LEON", "NUEVO", "ENLACE",
	"PARQUE", "PLANTA", "SILLA", "LASILLA", "ARQUE", "AARQUE",
	"PEACHTREE", "SUITE", "STREET", "BASE", "METAL", "PLASTIC",
	"GLASS", "BRASS", "CHANNEL", "FITTINGS", "LUMINAIRES", "PARTS",
	"ONLY", "ROAD", "EXPRESS", "GATEWAY", "SOUTH", "PLAINES",
	"JUNO", "WOLF", "KALOS", "KGGR", "KGNT", "58PM", "36PM",
	"ABL941020S81", "1C926", "1C22", "NPP20", "LSXR", "J100",
	"WRDC", "ND98413", "2633371", "252829",
}
