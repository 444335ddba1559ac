package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 10})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)

	snap := h.Snapshot()
	var cumulative uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
	}
	if cumulative != 2 || snap.count != 3 {
		t.Fatalf("expected 2 bucketed and 3 total, got %d and %d", cumulative, snap.count)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncAnalyses()
	AddHighlights("fill-word", 2)
	AddHighlights("passive", 0)
	ObserveAnalysisDurationMs(3)

	out := Render()
	for _, want := range []string{
		"# TYPE readability_analyses_total counter",
		`readability_highlights_total{category="fill-word"}`,
		"text_versions_saved_total",
		"uploads_imported_total",
		"uploads_failed_total",
		`readability_analysis_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, `category="passive"`) {
		t.Fatalf("zero highlight counts should not be recorded")
	}
}
