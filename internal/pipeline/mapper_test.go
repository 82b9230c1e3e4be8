package pipeline

import (
	"testing"

	"github.com/tiffinstash/delivery-service/internal/model"
)

func TestMapDropsRowsWithoutSKU(t *testing.T) {
	t.Parallel()

	m := NewMapper(testBundles)

	for _, sku := range []string{"", " ", "0"} {
		if _, ok := m.Map(model.OrderLine{OrderID: "2001", SKU: sku}); ok {
			t.Fatalf("expected line with SKU %q to be dropped", sku)
		}
	}
}

func TestMapFieldTransforms(t *testing.T) {
	t.Parallel()

	m := NewMapper(testBundles)

	row, ok := m.Map(model.OrderLine{
		OrderID:            "2002",
		SKU:                "FIERY-TD-MT01-T01-ONCA-FGBVG",
		Name:               "Asha Patel",
		SelectDeliveryCity: "Mississauga",
		DeliveryCity:       "Toronto",
		DriverInstructions: "Ring bell\nLeave at door",
		SellerInstructions: "No onions",
		DeliveryTime:       "Dinner (6.00 PM - 9.00 PM)",
	})
	if !ok {
		t.Fatal("expected line to map")
	}

	if row.City != "Toronto" {
		t.Fatalf("City = %q, want delivery city to win", row.City)
	}
	if row.DriverNote != "Ring bell. Leave at door" {
		t.Fatalf("DriverNote = %q", row.DriverNote)
	}
	if row.DeliveryTime != "DINNER" {
		t.Fatalf("DeliveryTime = %q, want DINNER", row.DeliveryTime)
	}
	if row.CLabl != "Asha Pat" {
		t.Fatalf("CLabl = %q, want short name for annotated row", row.CLabl)
	}
	if row.Upstair != "No" {
		t.Fatalf("Upstair = %q, want default No", row.Upstair)
	}
}

func TestMapSelectCityFallback(t *testing.T) {
	t.Parallel()

	m := NewMapper(testBundles)

	row, _ := m.Map(model.OrderLine{
		OrderID:            "2003",
		SKU:                "FIERY-TD-MT01-T01-ONCA-FGBVG",
		SelectDeliveryCity: "Mississauga",
	})
	if row.City != "Mississauga" {
		t.Fatalf("City = %q, want checkout city fallback", row.City)
	}
}

func TestMapCLablOnlyWithSellerNote(t *testing.T) {
	t.Parallel()

	m := NewMapper(testBundles)

	row, _ := m.Map(model.OrderLine{
		OrderID: "2004",
		SKU:     "FIERY-TD-MT01-T01-ONCA-FGBVG",
		Name:    "Asha Patel",
	})
	if row.CLabl != "" {
		t.Fatalf("CLabl = %q, want empty without seller note", row.CLabl)
	}

	row, _ = m.Map(model.OrderLine{
		OrderID:            "2005",
		SKU:                "FIERY-TD-MT01-T01-ONCA-FGBVG",
		Name:               "Asha Patel",
		SellerInstructions: "0",
	})
	if row.CLabl != "" {
		t.Fatalf("CLabl = %q, want empty for placeholder seller note", row.CLabl)
	}
}

func TestMapTagsBundleOrderID(t *testing.T) {
	t.Parallel()

	m := NewMapper(testBundles)

	row, _ := m.Map(model.OrderLine{OrderID: "2006", SKU: "STASH-TD-TS01-W05-ONCA-VEG08"})
	if row.OrderID != "2006-WTD" {
		t.Fatalf("OrderID = %q, want bundle tag suffix", row.OrderID)
	}

	row, _ = m.Map(model.OrderLine{OrderID: "2007", SKU: "FIERY-TD-MT01-T01-ONCA-FGBVG"})
	if row.OrderID != "2007" {
		t.Fatalf("OrderID = %q, want untagged", row.OrderID)
	}
}

func TestShortName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Asha Patel", "Asha Pat"},
		{"Asha", "Asha"},
		{"Jo Ng", "Jo Ng"},
		{"", ""},
		{"Priya Sharma Kapoor", "Priya Sha"},
	}
	for _, tt := range tests {
		if got := shortName(tt.in); got != tt.want {
			t.Fatalf("shortName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
