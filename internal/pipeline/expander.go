package pipeline

import (
	"time"

	"github.com/tiffinstash/delivery-service/internal/catalog"
	"github.com/tiffinstash/delivery-service/internal/model"
)

// Expander turns a bundle-SKU row into one row per mapped daily SKU,
// each dated to a successive business weekday.
type Expander struct {
	bundles catalog.Bundles
}

func NewExpander(bundles catalog.Bundles) *Expander {
	return &Expander{bundles: bundles}
}

// Expand emits min(5, len(mapped)) rows for a bundle row. Weekday
// enumeration here is always Monday-Friday: the per-row weekend mask
// governs the delivery calendar, not this initial schedule. A row whose
// SKU is not a bundle key, or whose start date does not parse, passes
// through unchanged.
func (e *Expander) Expand(row model.ExportRow) []model.ExportRow {
	bundle, ok := e.bundles.Lookup(row.SKU)
	if !ok {
		return []model.ExportRow{row}
	}

	start, err := parseDate(row.StartDate)
	if err != nil {
		return []model.ExportRow{row}
	}

	days := nextBusinessDays(start, model.WeekdaysPerBundle)
	out := make([]model.ExportRow, 0, len(bundle.SKUs))
	for i, sku := range bundle.SKUs {
		if i >= len(days) {
			break
		}
		expanded := row
		expanded.SKU = sku
		expanded.StartDate = formatDate(days[i])
		out = append(out, expanded)
	}
	return out
}

// nextBusinessDays returns the next n weekdays counted forward from and
// including start.
func nextBusinessDays(start time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for curr := start; len(days) < n; curr = curr.AddDate(0, 0, 1) {
		if wd := curr.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, curr)
		}
	}
	return days
}
