package store

import (
	"sort"

	"github.com/golang/geo/s2"

	"roadwatch/api"
)

// S2 cell levels used when clustering pins for the map view.
const (
	MinCellLevel = 2
	MaxCellLevel = 18
)

// MapView buckets the stored reports inside the viewport into s2 cells at the
// given level. A cell holding a single report keeps its exact pin; a cell with
// more reports collapses into one entry at the mean position with a count.
func (s *Store) MapView(vp api.ViewPort, level int) []api.MapResult {
	if level < MinCellLevel {
		level = MinCellLevel
	}
	if level > MaxCellLevel {
		level = MaxCellLevel
	}

	cells := make(map[s2.CellID][]api.SavedReport)
	for _, r := range s.All() {
		lat, lon := r.Report.Latitude, r.Report.Longitude
		if lat < vp.LatMin || lat > vp.LatMax || lon < vp.LonMin || lon > vp.LonMax {
			continue
		}
		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)).Parent(level)
		cells[cell] = append(cells[cell], r)
	}

	results := make([]api.MapResult, 0, len(cells))
	for _, members := range cells {
		if len(members) == 1 {
			m := members[0]
			results = append(results, api.MapResult{
				Latitude:  m.Report.Latitude,
				Longitude: m.Report.Longitude,
				Count:     1,
				ReportSeq: m.Seq,
				Kind:      m.Report.ReportType,
			})
			continue
		}
		var latSum, lonSum float64
		for _, m := range members {
			latSum += m.Report.Latitude
			lonSum += m.Report.Longitude
		}
		results = append(results, api.MapResult{
			Latitude:  latSum / float64(len(members)),
			Longitude: lonSum / float64(len(members)),
			Count:     int64(len(members)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		if results[i].Latitude != results[j].Latitude {
			return results[i].Latitude < results[j].Latitude
		}
		return results[i].Longitude < results[j].Longitude
	})
	return results
}
