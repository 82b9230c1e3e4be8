package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the reconciliation counters exposed on /metrics.
type Registry struct {
	reg *prometheus.Registry

	RowsInserted prometheus.Counter
	RowsUpdated  prometheus.Counter
	RowsSkipped  prometheus.Counter
	RowsErrored  prometheus.Counter
	BatchSeconds prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	inserted := prometheus.NewCounter(prometheus.CounterOpts{Name: "deliveries_reconcile_inserted_total"})
	updated := prometheus.NewCounter(prometheus.CounterOpts{Name: "deliveries_reconcile_updated_total"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "deliveries_reconcile_skipped_total"})
	errored := prometheus.NewCounter(prometheus.CounterOpts{Name: "deliveries_reconcile_errored_total"})
	batch := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deliveries_reconcile_batch_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(inserted, updated, skipped, errored, batch)
	return &Registry{
		reg:          r,
		RowsInserted: inserted,
		RowsUpdated:  updated,
		RowsSkipped:  skipped,
		RowsErrored:  errored,
		BatchSeconds: batch,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
