// Package notify is the single user-facing message surface. Every terminal
// outcome of a transition goes through it exactly once.
package notify

import "github.com/apex/log"

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Notice struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(n Notice)
}

func SuccessNotice(title, message string) Notice {
	return Notice{Kind: Success, Title: title, Message: message}
}

func ErrorNotice(title, message string) Notice {
	return Notice{Kind: Error, Title: title, Message: message}
}

func InfoNotice(title, message string) Notice {
	return Notice{Kind: Info, Title: title, Message: message}
}

// Logger forwards notices to the process log. It stands in for the toast/
// banner layer when the core runs headless.
type Logger struct{}

func (Logger) Notify(n Notice) {
	switch n.Kind {
	case Error:
		log.Errorf("%s: %s", n.Title, n.Message)
	case Info:
		log.Infof("%s: %s", n.Title, n.Message)
	default:
		log.Infof("%s: %s", n.Title, n.Message)
	}
}

// Recorder collects notices for assertions in tests.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.Notices = append(r.Notices, n)
}

func (r *Recorder) Last() (Notice, bool) {
	if len(r.Notices) == 0 {
		return Notice{}, false
	}
	return r.Notices[len(r.Notices)-1], true
}
