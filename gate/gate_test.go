package gate

import (
	"testing"

	"roadwatch/notify"
)

func TestAllowed(t *testing.T) {
	if !Allowed(true) {
		t.Errorf("Allowed(true): expected true")
	}
	if Allowed(false) {
		t.Errorf("Allowed(false): expected false")
	}
}

func TestCanProceedNotifiesWhenOffline(t *testing.T) {
	rec := &notify.Recorder{}
	g := New(func() bool { return false }, rec)

	if g.CanProceed() {
		t.Errorf("CanProceed while offline: expected false")
	}
	n, ok := rec.Last()
	if !ok {
		t.Fatalf("expected an offline notice")
	}
	if n.Kind != notify.Error || n.Title != OfflineTitle || n.Message != OfflineMessage {
		t.Errorf("unexpected offline notice: %+v", n)
	}
}

func TestCanProceedSilentWhenOnline(t *testing.T) {
	rec := &notify.Recorder{}
	g := New(func() bool { return true }, rec)

	if !g.CanProceed() {
		t.Errorf("CanProceed while online: expected true")
	}
	if len(rec.Notices) != 0 {
		t.Errorf("expected no notices, got %d", len(rec.Notices))
	}
}
