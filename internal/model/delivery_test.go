package model

import "testing"

func TestFieldsEqual(t *testing.T) {
	t.Parallel()

	a := DeliveryRow{OrderID: "1", SKU: "A", Name: "Asha", EndDate: "2026-02-04"}
	b := a

	if !FieldsEqual(&a, &b) {
		t.Fatal("identical rows should compare equal")
	}

	b.EndDate = "2026-02-05"
	if FieldsEqual(&a, &b) {
		t.Fatal("changed end date should compare unequal")
	}
}

func TestFieldsEqualIgnoresKeyColumns(t *testing.T) {
	t.Parallel()

	a := DeliveryRow{OrderID: "1", SKU: "A", Name: "Asha"}
	b := DeliveryRow{OrderID: "2", SKU: "B", Name: "Asha"}

	if !FieldsEqual(&a, &b) {
		t.Fatal("key columns must not participate in the comparison")
	}
}

func TestFieldsEqualTreatsPlaceholdersAsEmpty(t *testing.T) {
	t.Parallel()

	a := DeliveryRow{Description: ""}
	b := DeliveryRow{Description: "None"}
	c := DeliveryRow{Description: "nan"}

	if !FieldsEqual(&a, &b) || !FieldsEqual(&a, &c) {
		t.Fatal("None/nan should compare equal to empty")
	}
}

func TestSkipSlotRoundTrip(t *testing.T) {
	t.Parallel()

	var row DeliveryRow
	for i := 0; i < SkipSlotCount; i++ {
		row.SetSkipSlot(i, "0")
	}
	row.SetSkipSlot(0, "2026-02-03")
	row.SetSkipSlot(19, "2026-02-28")

	slots := row.SkipSlots()
	if len(slots) != SkipSlotCount {
		t.Fatalf("got %d slots", len(slots))
	}
	if slots[0] != "2026-02-03" || slots[19] != "2026-02-28" {
		t.Fatalf("slot values wrong: %v", slots)
	}
	if row.Skip1 != "2026-02-03" || row.Skip20 != "2026-02-28" {
		t.Fatal("slot setters must write through to the named fields")
	}

	fm := row.FieldMap()
	if fm["skip1"] != "2026-02-03" || fm["skip20"] != "2026-02-28" {
		t.Fatalf("field map missing skip columns: %v", fm)
	}
}

func TestEmptySlot(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "0", "0.0", "-", "P", "p", "nan", "None", " 0 "} {
		if !EmptySlot(v) {
			t.Fatalf("EmptySlot(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"2026-02-03", "30-Jan", "x"} {
		if EmptySlot(v) {
			t.Fatalf("EmptySlot(%q) = true, want false", v)
		}
	}
}
