package store

import (
	"context"
	"testing"

	"roadwatch/persist"
)

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	local := persist.NewMemStore()

	s := New()
	s.Append(quickAt(1, 10, 10))
	s.Append(quickAt(2, 11, 11))
	if err := s.SaveCache(ctx, local); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	restored := New()
	if err := restored.LoadCache(ctx, local); err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 cached reports, got %d", restored.Len())
	}
	last, _ := restored.Last()
	if last.Seq != 2 || last.Report.ReportType != "quick" {
		t.Errorf("expected the cached reports back intact, got %+v", last)
	}
}

func TestLoadCacheWithoutCacheIsNoop(t *testing.T) {
	s := New()
	if err := s.LoadCache(context.Background(), persist.NewMemStore()); err != nil {
		t.Fatalf("LoadCache on empty persistence: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected an empty store, got %d", s.Len())
	}
}
