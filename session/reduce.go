package session

// Reduce applies one resolved lifecycle event to a snapshot and returns the
// next snapshot. Pure: the input is never mutated, failures leave the state
// unchanged (or safely reset for provider failures), and no event is fatal.
func Reduce(s Snapshot, ev Event) Snapshot {
	switch e := ev.(type) {
	case RegistrationStarted:
		cu := e.Create
		s.State = RegistrationPending
		s.Create = &cu
	case RegistrationAccepted:
		s.State = CodeSent
		s.User = e.User
		s.Create = nil
	case RegistrationFailed:
		// Stays in RegistrationPending so the form can be resubmitted.
	case CodeAccepted:
		s.State = Verified
		s.User = e.User
	case CodeRejected:
		// Remains in CodeSent.
	case LoginStarted:
		s.State = LoginPending
	case LoginSucceeded:
		s.User = e.User
		if e.User != nil && !e.User.IsVerified {
			// The account was never verified; route back into verification.
			s.State = CodeSent
		} else {
			s.State = Verified
		}
	case LoginFailed:
		// Remains in LoginPending.
	case ResetRequested:
		s.State = ForgotCodeRequested
		s.Forgot = e.Forgot
	case ResetRequestFailed:
	case ForgotCodeAccepted:
		s.State = ForgotCodeValidated
	case ForgotCodeRejected:
	case PasswordUpdated:
		s.State = Verified
		s.User = e.User
		s.Forgot = nil
	case PasswordUpdateFailed:
	case ProviderSignedIn:
		s.State = Verified
		s.User = e.User
	case ProviderFailed:
		// Soft failure: drop back to a clean signed-out session.
		return NewSnapshot()
	case ProfileUpdated:
		s.User = e.User
	case ProfileUpdateFailed:
	case LoggedOut, AccountDeleted:
		return NewSnapshot()
	}
	return s
}
