package model

// ReferenceRecord is one SKU's entry in the reference catalog. At most
// one record exists per SKU; a missing SKU leaves enrichment fields
// empty rather than failing the row.
type ReferenceRecord struct {
	SKU         string
	Seller      string
	Delivery    string
	MealType    string
	MealPlan    string
	Product     string
	Label       string
	Description string
}

// WeekdaysPerBundle is the number of daily SKUs a bundle expands to,
// one per weekday of a single calendar week.
const WeekdaysPerBundle = 5

// Bundle maps one subscription bundle SKU to the five daily-product
// SKUs of a single business week, Monday first. Tag is appended to the
// order id of rows purchased under this bundle ("WTD", "GTD").
type Bundle struct {
	SKUs []string
	Tag  string
}
