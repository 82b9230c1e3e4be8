package pipeline

import (
	"strings"

	"github.com/tiffinstash/delivery-service/internal/catalog"
	"github.com/tiffinstash/delivery-service/internal/model"
)

// durationByPlan maps a catalog meal-plan value to the subscription's
// day count. Unrecognized plans yield an empty duration, which the
// delivery calendar later treats as a single day.
var durationByPlan = map[string]string{
	"Trial":             "1",
	"Weekly":            "5",
	"Weekly (3 Days)":   "3",
	"Weekly (4 Days)":   "4",
	"Monthly":           "20",
	"Monthly (12 Days)": "12",
	"Monthly (16 Days)": "16",
}

// Enricher joins export rows against the SKU reference catalog and
// fills the master-row defaults.
type Enricher struct {
	ref catalog.Reference
}

func NewEnricher(ref catalog.Reference) *Enricher {
	return &Enricher{ref: ref}
}

// Enrich builds a DeliveryRow from an export row. A catalog hit fills
// the seller/product fields, overwriting any prior value; a miss leaves
// them empty. Never errors.
func (e *Enricher) Enrich(row model.ExportRow) model.DeliveryRow {
	d := model.DeliveryRow{
		OrderID:         row.OrderID,
		Date:            row.Date,
		Name:            row.Name,
		Phone:           row.Phone,
		Email:           row.Email,
		HouseUnitNo:     row.HouseUnitNo,
		AddressLine1:    row.AddressLine1,
		City:            row.City,
		Zip:             row.Zip,
		SKU:             row.SKU,
		CLabl:           row.CLabl,
		DriverNote:      row.DriverNote,
		SellerNote:      row.SellerNote,
		UpstairDelivery: row.Upstair,
		DeliveryTime:    row.DeliveryTime,
		Quantity:        row.Quantity,
		StartDate:       row.StartDate,
		Status:          "0",
		DelSat:          model.SentinelNoSchedule,
		DelSun:          model.SentinelNoSchedule,
		TSNotes:         model.SentinelNoSchedule,
		CityMismatch:    row.CityMismatch,
	}
	for i := 0; i < model.SkipSlotCount; i++ {
		d.SetSkipSlot(i, "0")
	}

	if rec, ok := e.ref.Lookup(row.SKU); ok {
		d.Seller = rec.Seller
		d.Delivery = rec.Delivery
		d.MealType = rec.MealType
		d.MealPlan = rec.MealPlan
		d.Product = rec.Product
		d.ProductCode = rec.Label
		d.Description = rec.Description
	}

	d.Days = durationByPlan[strings.TrimSpace(d.MealPlan)]
	d.Label = resolveLabel(d.CLabl, d.ProductCode)

	return d
}

// resolveLabel prefers a manual CLABL annotation over the catalog
// label.
func resolveLabel(clabl, productCode string) string {
	switch v := strings.TrimSpace(clabl); v {
	case "", "0", "0.0", "nan", "None":
		return productCode
	default:
		return v
	}
}
