package pipeline

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) Fatal(string, ...zap.Field) {}
func (nopLogger) Sync() error                { return nil }

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	clock := func() time.Time {
		return time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)
	}
	p := New(testReference, testBundles, nopLogger{}, WithClock(clock))

	lines := []model.OrderLine{
		{
			OrderID:   "4001",
			SKU:       "STASH-TD-TS01-W05-ONCA-VEG08",
			Name:      "Asha Patel",
			StartDate: "2026-02-02",
		},
		{
			OrderID:   "4002",
			SKU:       "FIERY-TD-MT01-T01-ONCA-FGBVG",
			Name:      "Jo Ng",
			StartDate: "2026-02-03",
		},
		{OrderID: "4003", SKU: ""}, // dropped
	}

	rows := p.Run(lines)
	if len(rows) != 6 {
		t.Fatalf("expected 5 expanded + 1 plain rows, got %d", len(rows))
	}

	// Bundle rows carry the family tag and successive weekday starts.
	for i := 0; i < 5; i++ {
		if rows[i].OrderID != "4001-WTD" {
			t.Fatalf("row %d OrderID = %q, want 4001-WTD", i, rows[i].OrderID)
		}
	}
	if rows[0].StartDate != "2026-02-02" || rows[4].StartDate != "2026-02-06" {
		t.Fatalf("bundle weekday spread wrong: %q .. %q", rows[0].StartDate, rows[4].StartDate)
	}

	// First bundle row maps to a catalog SKU, so it is enriched and its
	// status resolves against the fixed clock.
	first := rows[0]
	if first.SKU != "TPROS-TD-MT91-T01-ONCA-TPROS" {
		t.Fatalf("first bundle SKU = %q", first.SKU)
	}
	if first.EndDate != "2026-02-02" {
		t.Fatalf("first bundle EndDate = %q, want single-day default", first.EndDate)
	}
	if first.Status != string(model.StatusLastDay) {
		t.Fatalf("first bundle Status = %q, want LAST DAY on end date", first.Status)
	}

	// Plain row: Weekly (3 Days) catalog plan, starts tomorrow.
	plain := rows[5]
	if plain.OrderID != "4002" {
		t.Fatalf("plain row OrderID = %q", plain.OrderID)
	}
	if plain.Days != "3" || plain.EndDate != "2026-02-05" {
		t.Fatalf("plain row calendar wrong: days=%q end=%q", plain.Days, plain.EndDate)
	}
	if plain.Status != string(model.StatusTBS) {
		t.Fatalf("plain row Status = %q, want TBS before start", plain.Status)
	}
}

func TestPipelineRunIsDeterministic(t *testing.T) {
	t.Parallel()

	clock := func() time.Time {
		return time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)
	}
	p := New(testReference, testBundles, nopLogger{}, WithClock(clock))

	lines := []model.OrderLine{
		{OrderID: "4010", SKU: "STASH-TD-TS01-W05-ONCA-VEG08", StartDate: "2026-02-02"},
		{OrderID: "4011", SKU: "FIERY-TD-MT01-T01-ONCA-FGBVG", StartDate: "P"},
	}

	a := p.Run(lines)
	b := p.Run(lines)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between identical runs", i)
		}
	}
}

func TestPipelinePausedRow(t *testing.T) {
	t.Parallel()

	p := New(testReference, testBundles, nopLogger{})

	rows := p.Run([]model.OrderLine{
		{OrderID: "4020", SKU: "FIERY-TD-MT01-T01-ONCA-FGBVG", StartDate: "P"},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].EndDate != "PAUSE" {
		t.Fatalf("EndDate = %q, want PAUSE", rows[0].EndDate)
	}
	if rows[0].Status != string(model.StatusPause) {
		t.Fatalf("Status = %q, want PAUSE", rows[0].Status)
	}
}
