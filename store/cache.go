package store

import (
	"context"
	"encoding/json"

	"github.com/apex/log"

	"roadwatch/api"
	"roadwatch/persist"
)

// SaveCache writes the current collection to the local state store so the last
// fetched reports survive a restart.
func (s *Store) SaveCache(ctx context.Context, local persist.Store) error {
	raw, err := json.Marshal(s.All())
	if err != nil {
		return err
	}
	return local.Set(ctx, persist.KeyReportCache, string(raw))
}

// LoadCache restores a previously cached collection. A missing cache is not an
// error; the store simply stays empty until the next refresh.
func (s *Store) LoadCache(ctx context.Context, local persist.Store) error {
	raw, err := local.Get(ctx, persist.KeyReportCache)
	if err == persist.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	var reports []api.SavedReport
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		log.Errorf("Discarding unreadable report cache: %v", err)
		return err
	}
	s.ReplaceAll(reports)
	return nil
}
