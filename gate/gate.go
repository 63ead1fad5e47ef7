// Package gate is the pre-flight connectivity check consulted before every
// network-dependent action.
package gate

import "roadwatch/notify"

// Fixed offline notice, shared by every gated action.
const (
	OfflineTitle   = "No connection"
	OfflineMessage = "Please connect to the internet and try again."
)

// Allowed is the pure decision: an action may proceed only while connected.
func Allowed(connected bool) bool {
	return connected
}

// Probe reports the current network status. It is supplied by an external
// network-status collaborator and must be cheap and synchronous.
type Probe func() bool

// AlwaysOnline is the probe for headless tooling that has no real network
// monitor.
func AlwaysOnline() bool { return true }

// Gate binds a probe to the notification channel. CanProceed surfaces the
// standardized offline notice itself so callers only abort.
type Gate struct {
	probe    Probe
	notifier notify.Notifier
}

func New(probe Probe, notifier notify.Notifier) *Gate {
	return &Gate{probe: probe, notifier: notifier}
}

func (g *Gate) CanProceed() bool {
	if Allowed(g.probe()) {
		return true
	}
	g.notifier.Notify(notify.ErrorNotice(OfflineTitle, OfflineMessage))
	return false
}
