package session

import "roadwatch/api"

// Event is a resolved lifecycle outcome fed to Reduce.
type Event interface {
	isEvent()
}

type RegistrationStarted struct {
	Create api.CreateUser
}

type RegistrationAccepted struct {
	User *api.User
}

type RegistrationFailed struct{}

type CodeAccepted struct {
	User *api.User
}

type CodeRejected struct{}

type LoginStarted struct{}

type LoginSucceeded struct {
	User *api.User
}

type LoginFailed struct{}

type ResetRequested struct {
	Forgot *api.ForgotUser
}

type ResetRequestFailed struct{}

type ForgotCodeAccepted struct{}

type ForgotCodeRejected struct{}

type PasswordUpdated struct {
	User *api.User
}

type PasswordUpdateFailed struct{}

type ProviderSignedIn struct {
	User *api.User
}

type ProviderFailed struct{}

type ProfileUpdated struct {
	User *api.User
}

type ProfileUpdateFailed struct{}

type LoggedOut struct{}

type AccountDeleted struct{}

func (RegistrationStarted) isEvent()  {}
func (RegistrationAccepted) isEvent() {}
func (RegistrationFailed) isEvent()   {}
func (CodeAccepted) isEvent()         {}
func (CodeRejected) isEvent()         {}
func (LoginStarted) isEvent()         {}
func (LoginSucceeded) isEvent()       {}
func (LoginFailed) isEvent()          {}
func (ResetRequested) isEvent()       {}
func (ResetRequestFailed) isEvent()   {}
func (ForgotCodeAccepted) isEvent()   {}
func (ForgotCodeRejected) isEvent()   {}
func (PasswordUpdated) isEvent()      {}
func (PasswordUpdateFailed) isEvent() {}
func (ProviderSignedIn) isEvent()     {}
func (ProviderFailed) isEvent()       {}
func (ProfileUpdated) isEvent()       {}
func (ProfileUpdateFailed) isEvent()  {}
func (LoggedOut) isEvent()            {}
func (AccountDeleted) isEvent()       {}
