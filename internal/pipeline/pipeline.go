// Package pipeline implements the order transformation stages: mapping
// raw order lines to the export schema, expanding subscription bundles
// into daily rows, enriching from the SKU reference catalog, and
// deriving each row's end date and status. Every stage is a pure
// function over one row plus the static lookup tables; rows never see
// each other.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/catalog"
	"github.com/tiffinstash/delivery-service/internal/model"
	"github.com/tiffinstash/delivery-service/pkg/logger"
)

type Pipeline struct {
	mapper   *Mapper
	expander *Expander
	enricher *Enricher
	logger   logger.ZapLogger
	now      func() time.Time
}

type Option func(*Pipeline)

// WithClock fixes the pipeline's notion of "today". Runs are then
// reproducible bit-for-bit for a given input.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func New(ref catalog.Reference, bundles catalog.Bundles, log logger.ZapLogger, opts ...Option) *Pipeline {
	p := &Pipeline{
		mapper:   NewMapper(bundles),
		expander: NewExpander(bundles),
		enricher: NewEnricher(ref),
		logger:   log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run transforms a materialized batch of order lines into delivery
// rows ready for reconciliation. Rows without a SKU are dropped; every
// other data-quality problem degrades per row instead of failing the
// batch.
func (p *Pipeline) Run(lines []model.OrderLine) []model.DeliveryRow {
	today := p.now()

	exported := make([]model.ExportRow, 0, len(lines))
	dropped := 0
	for _, line := range lines {
		row, ok := p.mapper.Map(line)
		if !ok {
			dropped++
			continue
		}
		exported = append(exported, p.expander.Expand(row)...)
	}

	out := make([]model.DeliveryRow, 0, len(exported))
	for _, row := range exported {
		d := p.enricher.Enrich(row)
		ApplyEndDate(&d)
		d.Status = string(ResolveStatus(today, d.StartDate, d.EndDate))
		out = append(out, d)
	}

	p.logger.Info("pipeline run complete",
		zap.Int("input_lines", len(lines)),
		zap.Int("dropped_no_sku", dropped),
		zap.Int("output_rows", len(out)),
	)
	return out
}
