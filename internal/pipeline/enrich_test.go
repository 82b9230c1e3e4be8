package pipeline

import (
	"testing"

	"github.com/tiffinstash/delivery-service/internal/model"
)

var testReference = fakeReference{
	"FIERY-TD-MT01-T01-ONCA-FGBVG": {
		SKU:         "FIERY-TD-MT01-T01-ONCA-FGBVG",
		Seller:      "Fiery Grills",
		Delivery:    "Tiffin",
		MealType:    "Veg",
		MealPlan:    "Weekly (3 Days)",
		Product:     "Basic Veg Tiffin",
		Label:       "FGBVG",
		Description: "Dal sabzi roti rice",
	},
}

func TestEnrichCatalogHit(t *testing.T) {
	t.Parallel()

	e := NewEnricher(testReference)
	d := e.Enrich(model.ExportRow{
		OrderID:   "3001",
		SKU:       "FIERY-TD-MT01-T01-ONCA-FGBVG",
		StartDate: "2026-02-02",
	})

	if d.Seller != "Fiery Grills" || d.Product != "Basic Veg Tiffin" {
		t.Fatalf("catalog fields not joined: %+v", d)
	}
	if d.ProductCode != "FGBVG" {
		t.Fatalf("ProductCode = %q, want catalog label", d.ProductCode)
	}
	if d.Days != "3" {
		t.Fatalf("Days = %q, want 3 for Weekly (3 Days)", d.Days)
	}
	if d.Label != "FGBVG" {
		t.Fatalf("Label = %q, want product code without annotation", d.Label)
	}
}

func TestEnrichCatalogMissLeavesFieldsEmpty(t *testing.T) {
	t.Parallel()

	e := NewEnricher(testReference)
	d := e.Enrich(model.ExportRow{OrderID: "3002", SKU: "UNKNOWN-SKU"})

	if d.Seller != "" || d.Product != "" || d.Days != "" {
		t.Fatalf("catalog miss should leave enrichment empty: %+v", d)
	}
}

func TestEnrichDefaults(t *testing.T) {
	t.Parallel()

	e := NewEnricher(testReference)
	d := e.Enrich(model.ExportRow{OrderID: "3003", SKU: "UNKNOWN-SKU"})

	if d.Status != "0" {
		t.Fatalf("Status = %q, want 0", d.Status)
	}
	if d.DelSat != "-" || d.DelSun != "-" || d.TSNotes != "-" {
		t.Fatalf("weekend mask and notes defaults wrong: %+v", d)
	}
	for i, v := range d.SkipSlots() {
		if v != "0" {
			t.Fatalf("skip slot %d = %q, want 0", i+1, v)
		}
	}
}

func TestEnrichCLablWinsLabel(t *testing.T) {
	t.Parallel()

	e := NewEnricher(testReference)
	d := e.Enrich(model.ExportRow{
		OrderID: "3004",
		SKU:     "FIERY-TD-MT01-T01-ONCA-FGBVG",
		CLabl:   "Asha Pat",
	})
	if d.Label != "Asha Pat" {
		t.Fatalf("Label = %q, want manual annotation to win", d.Label)
	}
}

func TestResolveLabelPlaceholders(t *testing.T) {
	t.Parallel()

	for _, placeholder := range []string{"", "0", "0.0", "nan", "None"} {
		if got := resolveLabel(placeholder, "FGBVG"); got != "FGBVG" {
			t.Fatalf("resolveLabel(%q) = %q, want product code", placeholder, got)
		}
	}
}
