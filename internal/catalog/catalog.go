// Package catalog loads the static lookup tables the pipeline joins
// against: the SKU reference catalog and the subscription bundle
// expansion table. Both are external files so the mappings can change
// without redeploying logic.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tiffinstash/delivery-service/internal/model"
)

// Reference resolves a SKU to its catalog record.
type Reference interface {
	Lookup(sku string) (model.ReferenceRecord, bool)
}

// Bundles resolves a bundle SKU to its weekly expansion.
type Bundles interface {
	Lookup(sku string) (model.Bundle, bool)
}

type reference struct {
	records map[string]model.ReferenceRecord
}

func (r *reference) Lookup(sku string) (model.ReferenceRecord, bool) {
	rec, ok := r.records[sku]
	return rec, ok
}

// referenceColumns is the required header of the reference CSV.
var referenceColumns = []string{
	"SKU", "SELLER", "DELIVERY", "MEAL TYPE", "MEAL PLAN", "PRODUCT", "LABEL", "DESCRIPTION",
}

// LoadReference reads the SKU reference catalog from a CSV file. A
// missing file is tolerated and yields an empty catalog: enrichment
// then degrades to empty fields. Duplicate SKUs keep the first record.
func LoadReference(path string) (Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &reference{records: map[string]model.ReferenceRecord{}}, nil
		}
		return nil, fmt.Errorf("open sku reference: %w", err)
	}
	defer f.Close()

	return parseReference(f)
}

func parseReference(r io.Reader) (Reference, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return &reference{records: map[string]model.ReferenceRecord{}}, nil
		}
		return nil, fmt.Errorf("read sku reference header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, col := range referenceColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("sku reference missing column %q", col)
		}
	}

	field := func(rec []string, col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	records := map[string]model.ReferenceRecord{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sku reference row: %w", err)
		}

		sku := field(rec, "SKU")
		if sku == "" {
			continue
		}
		if _, exists := records[sku]; exists {
			continue
		}
		records[sku] = model.ReferenceRecord{
			SKU:         sku,
			Seller:      field(rec, "SELLER"),
			Delivery:    field(rec, "DELIVERY"),
			MealType:    field(rec, "MEAL TYPE"),
			MealPlan:    field(rec, "MEAL PLAN"),
			Product:     field(rec, "PRODUCT"),
			Label:       field(rec, "LABEL"),
			Description: field(rec, "DESCRIPTION"),
		}
	}

	return &reference{records: records}, nil
}

type bundles struct {
	entries map[string]model.Bundle
}

func (b *bundles) Lookup(sku string) (model.Bundle, bool) {
	entry, ok := b.entries[sku]
	return entry, ok
}

type bundleFile struct {
	Bundles map[string]bundleEntry `yaml:"bundles"`
}

type bundleEntry struct {
	SKUs []string `yaml:"skus"`
	Tag  string   `yaml:"tag"`
}

// LoadBundles reads the subscription expansion table from a YAML file.
// Every bundle must map to exactly 5 SKUs; the list order is calendar
// order Monday through Friday. A missing file yields an empty table.
func LoadBundles(path string) (Bundles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &bundles{entries: map[string]model.Bundle{}}, nil
		}
		return nil, fmt.Errorf("open bundle table: %w", err)
	}

	var file bundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bundle table: %w", err)
	}

	entries := make(map[string]model.Bundle, len(file.Bundles))
	for sku, entry := range file.Bundles {
		if len(entry.SKUs) != model.WeekdaysPerBundle {
			return nil, fmt.Errorf("bundle %s maps to %d skus, want %d", sku, len(entry.SKUs), model.WeekdaysPerBundle)
		}
		entries[sku] = model.Bundle{SKUs: entry.SKUs, Tag: entry.Tag}
	}

	return &bundles{entries: entries}, nil
}
