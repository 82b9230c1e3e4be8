package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadReference(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "sku-ref.csv", `SKU,SELLER,DELIVERY,MEAL TYPE,MEAL PLAN,PRODUCT,LABEL,DESCRIPTION
FIERY-TD-MT01-T01-ONCA-FGBVG,Fiery Grills,Tiffin,Veg,Trial,Basic Veg Tiffin,FGBVG,Dal sabzi roti rice
FIERY-TD-MT01-T01-ONCA-FGBVG,Duplicate Seller,Tiffin,Veg,Trial,Duplicate,DUP,should be ignored
`)

	ref, err := LoadReference(path)
	if err != nil {
		t.Fatalf("LoadReference: %v", err)
	}

	rec, ok := ref.Lookup("FIERY-TD-MT01-T01-ONCA-FGBVG")
	if !ok {
		t.Fatal("expected SKU to resolve")
	}
	if rec.Seller != "Fiery Grills" {
		t.Fatalf("Seller = %q, want first record to win", rec.Seller)
	}
	if rec.MealPlan != "Trial" || rec.Label != "FGBVG" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if _, ok := ref.Lookup("MISSING"); ok {
		t.Fatal("unknown SKU should not resolve")
	}
}

func TestLoadReferenceMissingFile(t *testing.T) {
	t.Parallel()

	ref, err := LoadReference(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("missing file should be tolerated: %v", err)
	}
	if _, ok := ref.Lookup("ANY"); ok {
		t.Fatal("empty catalog should resolve nothing")
	}
}

func TestLoadReferenceMissingColumn(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.csv", "SKU,SELLER\nA,B\n")
	if _, err := LoadReference(path); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

func TestLoadBundles(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bundles.yaml", `bundles:
  STASH-TD-TS01-W05-ONCA-VEG08:
    tag: WTD
    skus:
      - MON-SKU
      - TUE-SKU
      - WED-SKU
      - THU-SKU
      - FRI-SKU
`)

	bundles, err := LoadBundles(path)
	if err != nil {
		t.Fatalf("LoadBundles: %v", err)
	}

	b, ok := bundles.Lookup("STASH-TD-TS01-W05-ONCA-VEG08")
	if !ok {
		t.Fatal("expected bundle to resolve")
	}
	if b.Tag != "WTD" {
		t.Fatalf("Tag = %q, want WTD", b.Tag)
	}
	if len(b.SKUs) != 5 || b.SKUs[0] != "MON-SKU" || b.SKUs[4] != "FRI-SKU" {
		t.Fatalf("bundle SKUs wrong: %v", b.SKUs)
	}
}

func TestLoadBundlesWrongSize(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bundles.yaml", `bundles:
  BAD-BUNDLE:
    tag: WTD
    skus: [ONE, TWO]
`)
	if _, err := LoadBundles(path); err == nil {
		t.Fatal("expected error for bundle with wrong SKU count")
	}
}

func TestLoadBundlesMissingFile(t *testing.T) {
	t.Parallel()

	bundles, err := LoadBundles(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should be tolerated: %v", err)
	}
	if _, ok := bundles.Lookup("ANY"); ok {
		t.Fatal("empty table should resolve nothing")
	}
}
