// Package persist is the key-based local state store retaining the onboarding
// flag, the account session and the report cache across restarts. The core
// treats it as an opaque get/set interface; backends are interchangeable.
package persist

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyOnboarded   = "onboarded"
	KeySession     = "session"
	KeyReportCache = "report_cache"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
