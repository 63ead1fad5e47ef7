// Package store keeps the client-side collection of reports fetched from the
// service. A refresh replaces the collection wholesale; the last full fetch
// always wins and no merging or conflict resolution is attempted.
package store

import (
	"context"
	"sync"

	"github.com/apex/log"

	"roadwatch/api"
)

// Lister fetches the full remote report collection.
type Lister interface {
	ListReports(ctx context.Context) ([]api.SavedReport, error)
}

type Store struct {
	mu      sync.Mutex
	reports []api.SavedReport
}

func New() *Store {
	return &Store{}
}

// Refresh fetches all reports and replaces the local collection. Order is the
// insertion order returned by the service.
func (s *Store) Refresh(ctx context.Context, ls Lister) error {
	reports, err := ls.ListReports(ctx)
	if err != nil {
		log.Errorf("Failed to fetch reports: %v", err)
		return err
	}
	s.ReplaceAll(reports)
	return nil
}

func (s *Store) ReplaceAll(reports []api.SavedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]api.SavedReport(nil), reports...)
}

func (s *Store) Append(r api.SavedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []api.SavedReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.SavedReport(nil), s.reports...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

func (s *Store) Last() (api.SavedReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reports) == 0 {
		return api.SavedReport{}, false
	}
	return s.reports[len(s.reports)-1], true
}
