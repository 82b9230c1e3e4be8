package model

import (
	"strconv"
	"strings"
)

// DeliveryRow is one schedulable delivery as persisted in the
// deliveries table. Rows are identified by the composite key
// (order_id, sku); every other column is data and participates in the
// reconciler's field-by-field comparison. All columns are text: the
// pipeline's sentinel values ("P", "-", "0") live alongside real dates
// and numbers in the same fields.
type DeliveryRow struct {
	OrderID         string `db:"order_id" json:"order_id"`
	Date            string `db:"date" json:"date"`
	Name            string `db:"name" json:"name"`
	Phone           string `db:"phone" json:"phone"`
	Email           string `db:"email" json:"email"`
	HouseUnitNo     string `db:"house_unit_no" json:"house_unit_no"`
	AddressLine1    string `db:"address_line1" json:"address_line1"`
	City            string `db:"city" json:"city"`
	Zip             string `db:"zip" json:"zip"`
	SKU             string `db:"sku" json:"sku"`
	Seller          string `db:"seller" json:"seller"`
	Delivery        string `db:"delivery" json:"delivery"`
	MealType        string `db:"meal_type" json:"meal_type"`
	MealPlan        string `db:"meal_plan" json:"meal_plan"`
	Product         string `db:"product" json:"product"`
	ProductCode     string `db:"product_code" json:"product_code"`
	CLabl           string `db:"clabl" json:"clabl"`
	Label           string `db:"label" json:"label"`
	DriverNote      string `db:"driver_note" json:"driver_note"`
	SellerNote      string `db:"seller_note" json:"seller_note"`
	UpstairDelivery string `db:"upstair_delivery" json:"upstair_delivery"`
	DeliveryTime    string `db:"delivery_time" json:"delivery_time"`
	Quantity        string `db:"quantity" json:"quantity"`
	Days            string `db:"days" json:"days"`
	Count           string `db:"count" json:"count"`
	StartDate       string `db:"start_date" json:"start_date"`
	EndDate         string `db:"end_date" json:"end_date"`
	Status          string `db:"status" json:"status"`
	Skip1           string `db:"skip1" json:"skip1"`
	Skip2           string `db:"skip2" json:"skip2"`
	Skip3           string `db:"skip3" json:"skip3"`
	Skip4           string `db:"skip4" json:"skip4"`
	Skip5           string `db:"skip5" json:"skip5"`
	Skip6           string `db:"skip6" json:"skip6"`
	Skip7           string `db:"skip7" json:"skip7"`
	Skip8           string `db:"skip8" json:"skip8"`
	Skip9           string `db:"skip9" json:"skip9"`
	Skip10          string `db:"skip10" json:"skip10"`
	Skip11          string `db:"skip11" json:"skip11"`
	Skip12          string `db:"skip12" json:"skip12"`
	Skip13          string `db:"skip13" json:"skip13"`
	Skip14          string `db:"skip14" json:"skip14"`
	Skip15          string `db:"skip15" json:"skip15"`
	Skip16          string `db:"skip16" json:"skip16"`
	Skip17          string `db:"skip17" json:"skip17"`
	Skip18          string `db:"skip18" json:"skip18"`
	Skip19          string `db:"skip19" json:"skip19"`
	Skip20          string `db:"skip20" json:"skip20"`
	DelSat          string `db:"delsat" json:"delsat"`
	DelSun          string `db:"delsun" json:"delsun"`
	TSNotes         string `db:"ts_notes" json:"ts_notes"`
	Description     string `db:"description" json:"description"`
	CityMismatch    string `db:"city_mismatch" json:"city_mismatch"`
}

// SkipSlotCount is the fixed number of skip-exception slots per row.
const SkipSlotCount = 20

// KeyColumns identify a row; they never appear in an UPDATE SET list.
var KeyColumns = []string{"order_id", "sku"}

// DataColumns lists every non-key column in table order.
var DataColumns = []string{
	"date", "name", "phone", "email", "house_unit_no", "address_line1",
	"city", "zip", "seller", "delivery", "meal_type", "meal_plan",
	"product", "product_code", "clabl", "label", "driver_note",
	"seller_note", "upstair_delivery", "delivery_time", "quantity",
	"days", "count", "start_date", "end_date", "status",
	"skip1", "skip2", "skip3", "skip4", "skip5", "skip6", "skip7",
	"skip8", "skip9", "skip10", "skip11", "skip12", "skip13", "skip14",
	"skip15", "skip16", "skip17", "skip18", "skip19", "skip20",
	"delsat", "delsun", "ts_notes", "description", "city_mismatch",
}

// AllColumns is keys followed by data columns, in table order.
var AllColumns = append(append([]string{}, KeyColumns...), DataColumns...)

func (r *DeliveryRow) skipPtrs() []*string {
	return []*string{
		&r.Skip1, &r.Skip2, &r.Skip3, &r.Skip4, &r.Skip5,
		&r.Skip6, &r.Skip7, &r.Skip8, &r.Skip9, &r.Skip10,
		&r.Skip11, &r.Skip12, &r.Skip13, &r.Skip14, &r.Skip15,
		&r.Skip16, &r.Skip17, &r.Skip18, &r.Skip19, &r.Skip20,
	}
}

// SkipSlots returns the 20 skip-exception values in slot order.
func (r *DeliveryRow) SkipSlots() []string {
	ptrs := r.skipPtrs()
	out := make([]string, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

// SetSkipSlot writes a skip date into slot i (0-based).
func (r *DeliveryRow) SetSkipSlot(i int, v string) {
	*r.skipPtrs()[i] = v
}

// FieldMap returns every non-key column with its current value, keyed
// by column name, for dynamic SQL building and fingerprint comparison.
func (r *DeliveryRow) FieldMap() map[string]string {
	m := map[string]string{
		"date":             r.Date,
		"name":             r.Name,
		"phone":            r.Phone,
		"email":            r.Email,
		"house_unit_no":    r.HouseUnitNo,
		"address_line1":    r.AddressLine1,
		"city":             r.City,
		"zip":              r.Zip,
		"seller":           r.Seller,
		"delivery":         r.Delivery,
		"meal_type":        r.MealType,
		"meal_plan":        r.MealPlan,
		"product":          r.Product,
		"product_code":     r.ProductCode,
		"clabl":            r.CLabl,
		"label":            r.Label,
		"driver_note":      r.DriverNote,
		"seller_note":      r.SellerNote,
		"upstair_delivery": r.UpstairDelivery,
		"delivery_time":    r.DeliveryTime,
		"quantity":         r.Quantity,
		"days":             r.Days,
		"count":            r.Count,
		"start_date":       r.StartDate,
		"end_date":         r.EndDate,
		"status":           r.Status,
		"delsat":           r.DelSat,
		"delsun":           r.DelSun,
		"ts_notes":         r.TSNotes,
		"description":      r.Description,
		"city_mismatch":    r.CityMismatch,
	}
	for i, v := range r.SkipSlots() {
		m[skipColumn(i)] = v
	}
	return m
}

func skipColumn(i int) string {
	return "skip" + strconv.Itoa(i+1)
}

// FieldsEqual compares two rows over every non-key column, treating
// empty-equivalent values as equal. It is the reconciler's duplicate
// check.
func FieldsEqual(a, b *DeliveryRow) bool {
	am, bm := a.FieldMap(), b.FieldMap()
	for _, col := range DataColumns {
		if normalizeField(am[col]) != normalizeField(bm[col]) {
			return false
		}
	}
	return true
}

func normalizeField(v string) string {
	if v == "None" || v == "nan" {
		return ""
	}
	return v
}

// EmptySlot reports skip-slot values that hold no date: the pipeline's
// column defaults and spreadsheet-export artifacts.
func EmptySlot(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "0.0", "-", "p", "nan", "none":
		return true
	}
	return false
}
