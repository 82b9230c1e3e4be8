package pipeline

import (
	"strings"

	"github.com/tiffinstash/delivery-service/internal/catalog"
	"github.com/tiffinstash/delivery-service/internal/model"
)

// timeRangeLabels normalizes the checkout's delivery-time range strings
// to the two labels drivers work with.
var timeRangeLabels = map[string]string{
	"Dinner (1.30 PM - 7.30 PM)": "DINNER",
	"Dinner (2.00 PM - 8.00 PM)": "DINNER",
	"Dinner (6.00 PM - 9.00 PM)": "DINNER",
	"Lunch (9.00 AM - 2.00 PM)":  "LUNCH",
	"Lunch (9.00 AM - 3.00 PM)":  "LUNCH",
	"Lunch (9.30 AM - 2.30 PM)":  "LUNCH",
	"Lunch (4.00 AM - 8.00 AM)":  "LUNCH",
	"Lunch (4.00 AM - 11.00 AM)": "LUNCH",
	"Lunch (10.30 AM - 2.00 PM)": "LUNCH",
	"Lunch (10.00 AM - 3.00 PM)": "LUNCH",
	"Lunch (6.00 AM - 1.00 PM)":  "LUNCH",
	"Lunch (6.00 AM - 2.00 PM)":  "LUNCH",
	"Lunch (6.00 AM - 11.00 AM)": "LUNCH",
	"Lunch (7.00 AM - 1.00 PM)":  "LUNCH",
	"Lunch (8.00 AM - 11.00 AM)": "LUNCH",
	"Lunch (9.00 AM - 1.00 PM)":  "LUNCH",
}

// Mapper projects raw order lines into the canonical export schema.
type Mapper struct {
	bundles catalog.Bundles
}

func NewMapper(bundles catalog.Bundles) *Mapper {
	return &Mapper{bundles: bundles}
}

// Map projects one order line into an ExportRow. The second return is
// false when the line carries no SKU; such lines are dropped before
// they reach the rest of the pipeline.
func (m *Mapper) Map(line model.OrderLine) (model.ExportRow, bool) {
	sku := strings.TrimSpace(line.SKU)
	if sku == "" || sku == "0" {
		return model.ExportRow{}, false
	}

	city := strings.TrimSpace(line.DeliveryCity)
	if city == "" {
		city = strings.TrimSpace(line.SelectDeliveryCity)
	}

	row := model.ExportRow{
		OrderID:      m.tagOrderID(line.OrderID, sku),
		Date:         line.OrderDate,
		Name:         line.Name,
		Phone:        line.Phone,
		Email:        line.Email,
		HouseUnitNo:  line.HouseUnitNo,
		AddressLine1: line.AddressLine1,
		City:         city,
		Zip:          line.Zip,
		SKU:          sku,
		DriverNote:   strings.ReplaceAll(line.DriverInstructions, "\n", ". "),
		SellerNote:   line.SellerInstructions,
		DeliveryTime: normalizeDeliveryTime(line.DeliveryTime),
		Quantity:     line.Quantity,
		StartDate:    line.StartDate,
		CityMismatch: line.CityMismatch,
	}

	if note := strings.TrimSpace(row.SellerNote); note != "" && note != "0" {
		row.CLabl = shortName(row.Name)
	}
	if row.Upstair == "" || row.Upstair == "0" {
		row.Upstair = "No"
	}

	return row, true
}

// tagOrderID appends the bundle family tag so expanded rows of the same
// purchase stay distinguishable from plain orders with the same id.
func (m *Mapper) tagOrderID(orderID, sku string) string {
	if bundle, ok := m.bundles.Lookup(sku); ok && bundle.Tag != "" {
		return orderID + "-" + bundle.Tag
	}
	return orderID
}

func normalizeDeliveryTime(v string) string {
	if label, ok := timeRangeLabels[v]; ok {
		return label
	}
	return v
}

// shortName builds the customer label: first name plus the first three
// characters of the last name.
func shortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := parts[0]
	if len(parts) == 1 {
		return first
	}
	last := parts[1]
	if len(last) > 3 {
		last = last[:3]
	}
	return strings.TrimSpace(first + " " + last)
}
