package store

import (
	"context"
	"fmt"
	"testing"

	"roadwatch/api"
	"roadwatch/report"
)

type fakeLister struct {
	reports []api.SavedReport
	err     error
	calls   int
}

func (f *fakeLister) ListReports(ctx context.Context) ([]api.SavedReport, error) {
	f.calls++
	return f.reports, f.err
}

func quickAt(seq int64, lat, lon float64) api.SavedReport {
	return api.SavedReport{
		Seq:    seq,
		UserId: "u-1",
		Report: report.Envelope{
			ReportType:           report.KindQuick,
			Latitude:             lat,
			Longitude:            lon,
			RoadType:             report.Section,
			ConditionType:        report.PavementCondition,
			ConditionDescription: "large pothole",
			SeverityLevel:        2,
			Images:               []string{"img1.png"},
		},
	}
}

func TestRefreshReplacesWholesale(t *testing.T) {
	s := New()

	first := &fakeLister{reports: []api.SavedReport{quickAt(1, 10, 10), quickAt(2, 11, 11)}}
	if err := s.Refresh(context.Background(), first); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 reports, got %d", s.Len())
	}

	second := &fakeLister{reports: []api.SavedReport{quickAt(3, 12, 12)}}
	if err := s.Refresh(context.Background(), second); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected wholesale replacement, got %d reports", s.Len())
	}
	for _, r := range s.All() {
		if r.Seq == 1 || r.Seq == 2 {
			t.Errorf("old report %d survived a refresh", r.Seq)
		}
	}
}

func TestRefreshFailureKeepsCollection(t *testing.T) {
	s := New()
	s.ReplaceAll([]api.SavedReport{quickAt(1, 10, 10)})

	failing := &fakeLister{err: fmt.Errorf("boom")}
	if err := s.Refresh(context.Background(), failing); err == nil {
		t.Fatalf("expected refresh error")
	}
	if s.Len() != 1 {
		t.Errorf("failed refresh must not touch the collection, got %d reports", s.Len())
	}
}

func TestAppendAndLast(t *testing.T) {
	s := New()
	s.Append(quickAt(1, 10, 10))
	s.Append(quickAt(2, 11, 11))

	last, ok := s.Last()
	if !ok || last.Seq != 2 {
		t.Errorf("expected last seq 2, got %+v (ok=%v)", last, ok)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d", s.Len())
	}
	if _, ok := s.Last(); ok {
		t.Errorf("Last on empty store should report no element")
	}
}

func TestImpactTotals(t *testing.T) {
	s := New()
	s.Append(quickAt(1, 10, 10)) // 1.5 + 0.25 = 1.75 at severity 2
	s.Append(api.SavedReport{
		Seq: 2,
		Report: report.Envelope{
			ReportType:   report.KindIncident,
			RoadType:     report.Turn,
			IncidentType: "damaged guardrail",
			Description:  "bent into the lane",
			Images:       []string{"img1.png"},
		},
	})

	if got := s.Impact().String(); got != "3.75" {
		t.Errorf("Impact: expected 3.75, got %s", got)
	}
}
