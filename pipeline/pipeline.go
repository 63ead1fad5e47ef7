// Package pipeline composes the connectivity gate, the report validators and
// the remote dispatch into the report submission flow.
package pipeline

import (
	"context"
	"sync"

	"github.com/apex/log"

	"roadwatch/api"
	"roadwatch/gate"
	"roadwatch/notify"
	"roadwatch/report"
	"roadwatch/session"
	"roadwatch/store"
)

const (
	MsgFillRequired    = "Please fill all required fields."
	MsgReportSentTitle = "Report sent"
	MsgReportSentBody  = "Thank you for contributing."
	MsgReportFailed    = "Report not sent"
	MsgReportRetry     = "We could not send your report. Please try again."
)

// Dispatcher sends a validated report to the service.
type Dispatcher interface {
	SubmitReport(ctx context.Context, args api.ReportArgs) (*api.SavedReport, error)
}

// Outcome is the terminal result of one submission attempt. Validation
// problems surface inline through ValidationError; everything else goes
// through the notification channel.
type Outcome struct {
	Submitted       bool
	Signal          session.Signal
	ValidationError string
}

type Pipeline struct {
	mu        sync.Mutex
	lastError string

	gate       *gate.Gate
	notifier   notify.Notifier
	dispatcher Dispatcher
	store      *store.Store
}

func New(g *gate.Gate, notifier notify.Notifier, dispatcher Dispatcher, st *store.Store) *Pipeline {
	return &Pipeline{
		gate:       g,
		notifier:   notifier,
		dispatcher: dispatcher,
		store:      st,
	}
}

// Submit runs the full submission flow for one report: gate, validation,
// dispatch, store update. No partial report state is ever kept; the only side
// effects are the store append on success and the error-message field.
func (p *Pipeline) Submit(ctx context.Context, userId string, r report.Report, kind report.Kind, loc api.Point) Outcome {
	if !p.gate.CanProceed() {
		return Outcome{}
	}

	if !report.IsValid(r, kind) {
		return Outcome{ValidationError: MsgFillRequired}
	}

	env, err := report.Encode(r, loc.Lat, loc.Lon)
	if err != nil {
		return Outcome{ValidationError: MsgFillRequired}
	}

	saved, err := p.dispatcher.SubmitReport(ctx, api.ReportArgs{
		Version: api.ApiVersion,
		Id:      userId,
		Report:  env,
	})
	if err != nil {
		log.Errorf("Report dispatch failed: %v", err)
		p.setError(MsgReportRetry)
		p.notifier.Notify(notify.ErrorNotice(MsgReportFailed, MsgReportRetry))
		return Outcome{}
	}

	p.store.Append(*saved)
	p.setError("")
	p.notifier.Notify(notify.SuccessNotice(MsgReportSentTitle, MsgReportSentBody))
	return Outcome{Submitted: true, Signal: session.SignalHome}
}

// LastError returns the stored failure message, empty after a success.
func (p *Pipeline) LastError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastError
}

func (p *Pipeline) setError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastError = msg
}
