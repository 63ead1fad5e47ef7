package store

import (
	"testing"

	"roadwatch/api"
)

func TestMapViewAggregatesNearbyPins(t *testing.T) {
	s := New()
	// Two reports a few meters apart, one far away, one outside the viewport.
	s.Append(quickAt(1, 35.12935, -90.12226))
	s.Append(quickAt(2, 35.12936, -90.12227))
	s.Append(quickAt(3, 36.50000, -91.50000))
	s.Append(quickAt(4, 48.85660, 2.35220))

	vp := api.ViewPort{LatMin: 34, LonMin: -92, LatMax: 37, LonMax: -89}
	results := s.MapView(vp, 12)

	if len(results) != 2 {
		t.Fatalf("expected 2 map entries, got %d: %+v", len(results), results)
	}
	if results[0].Count != 2 {
		t.Errorf("expected the near pair aggregated with count 2, got %+v", results[0])
	}
	if results[1].Count != 1 || results[1].ReportSeq != 3 {
		t.Errorf("expected the lone pin to keep its seq, got %+v", results[1])
	}
}

func TestMapViewClampsLevel(t *testing.T) {
	s := New()
	s.Append(quickAt(1, 35.0, -90.0))

	vp := api.ViewPort{LatMin: 30, LonMin: -95, LatMax: 40, LonMax: -85}
	if got := s.MapView(vp, 99); len(got) != 1 {
		t.Errorf("level above max: expected 1 entry, got %d", len(got))
	}
	if got := s.MapView(vp, -1); len(got) != 1 {
		t.Errorf("level below min: expected 1 entry, got %d", len(got))
	}
}
