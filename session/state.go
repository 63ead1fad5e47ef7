// Package session holds the account lifecycle: the in-memory session entities,
// the pure reducer over lifecycle events, and the Lifecycle orchestrator that
// drives remote calls. State transitions never happen outside Reduce.
package session

import "roadwatch/api"

type State string

const (
	Anonymous           State = "anonymous"
	RegistrationPending State = "registration_pending"
	LoginPending        State = "login_pending"
	CodeSent            State = "code_sent"
	ForgotCodeRequested State = "forgot_code_requested"
	ForgotCodeValidated State = "forgot_code_validated"
	Verified            State = "verified"
)

// Snapshot is the whole mutable session state. Entities are replaced
// wholesale on each successful remote response, never patched in place.
type Snapshot struct {
	State  State           `json:"state"`
	User   *api.User       `json:"user,omitempty"`
	Create *api.CreateUser `json:"create,omitempty"`
	Forgot *api.ForgotUser `json:"forgot,omitempty"`
}

func NewSnapshot() Snapshot {
	return Snapshot{State: Anonymous}
}
