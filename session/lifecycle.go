package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/apex/log"

	"roadwatch/api"
	"roadwatch/gate"
	"roadwatch/notify"
	"roadwatch/persist"
)

// Backend is the remote-service surface the lifecycle depends on. remote.Client
// implements it; tests substitute fakes.
type Backend interface {
	Register(ctx context.Context, cu api.CreateUser, localisation string) (*api.User, error)
	VerifyCode(ctx context.Context, userId, code string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*api.ForgotUser, error)
	ValidateForgotCode(ctx context.Context, userId, code string) error
	ChangePassword(ctx context.Context, userId, password string) (*api.User, error)
	SignInWithProvider(ctx context.Context, token string) (*api.User, error)
	UpdateUser(ctx context.Context, args api.UpdateUserArgs) (*api.User, error)
	DeleteUser(ctx context.Context, userId string) error
}

// TokenSource obtains an identity token from the external provider. Provider
// internals are out of scope; only the token crosses into the core.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Signal is the navigation intent a transition emits. The shell outside the
// core maps signals to actual navigation; transitions never navigate directly.
type Signal string

const (
	SignalNone        Signal = ""
	SignalHome        Signal = "home"
	SignalVerify      Signal = "verify"
	SignalWelcome     Signal = "welcome"
	SignalResetCode   Signal = "reset_code"
	SignalNewPassword Signal = "new_password"
)

type transition int

const (
	trRegister transition = iota
	trVerify
	trLogin
	trForgot
	trForgotValidate
	trChangePassword
	trProvider
	trProfile
	trDelete
)

// Lifecycle drives the account state machine. Every network-dependent
// transition is gated, dispatched, and applied through Reduce; a generation
// counter per transition discards responses that resolve after a newer
// dispatch of the same transition.
type Lifecycle struct {
	mu   sync.Mutex
	snap Snapshot
	gen  map[transition]uint64

	backend  Backend
	gate     *gate.Gate
	notifier notify.Notifier
	local    persist.Store // optional; nil disables snapshot persistence
}

func NewLifecycle(backend Backend, g *gate.Gate, notifier notify.Notifier, local persist.Store) *Lifecycle {
	return &Lifecycle{
		snap:     NewSnapshot(),
		gen:      map[transition]uint64{},
		backend:  backend,
		gate:     g,
		notifier: notifier,
		local:    local,
	}
}

// Snapshot returns a copy of the current session state.
func (l *Lifecycle) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

func (l *Lifecycle) State() State {
	return l.Snapshot().State
}

// begin issues a new generation token for a transition and applies its start
// event, if any.
func (l *Lifecycle) begin(tr transition, start Event) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen[tr]++
	if start != nil {
		l.snap = Reduce(l.snap, start)
	}
	return l.gen[tr]
}

// resolve applies the terminal event of a transition unless a newer dispatch
// has superseded this one. Stale outcomes are discarded whole, notice
// included.
func (l *Lifecycle) resolve(tr transition, token uint64, ev Event) bool {
	l.mu.Lock()
	if l.gen[tr] != token {
		l.mu.Unlock()
		log.Warnf("Discarding stale outcome for transition %d", tr)
		return false
	}
	l.snap = Reduce(l.snap, ev)
	snap := l.snap
	l.mu.Unlock()

	l.saveSnapshot(snap)
	return true
}

// Register dispatches the registration and, on success, moves to CodeSent
// carrying the server-assigned partial user.
func (l *Lifecycle) Register(ctx context.Context, cu api.CreateUser, localisation string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trRegister, RegistrationStarted{Create: cu})

	user, err := l.backend.Register(ctx, cu, localisation)
	if err != nil {
		if l.resolve(trRegister, token, RegistrationFailed{}) {
			log.Errorf("Registration failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgRegisterFailed, MsgRegisterRetry))
		}
		return SignalNone
	}
	if !l.resolve(trRegister, token, RegistrationAccepted{User: user}) {
		return SignalNone
	}
	l.notifier.Notify(notify.SuccessNotice(MsgCodeSentTitle, MsgCodeSentBody))
	return SignalVerify
}

// SubmitVerificationCode completes registration; success replaces the stored
// user with the server response and terminates in Verified.
func (l *Lifecycle) SubmitVerificationCode(ctx context.Context, userId, code string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trVerify, nil)

	user, err := l.backend.VerifyCode(ctx, userId, code)
	if err != nil {
		if l.resolve(trVerify, token, CodeRejected{}) {
			log.Errorf("Code verification failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgCodeRejected, MsgCodeRetry))
		}
		return SignalNone
	}
	if !l.resolve(trVerify, token, CodeAccepted{User: user}) {
		return SignalNone
	}
	l.notifier.Notify(notify.SuccessNotice(MsgVerifiedTitle, MsgVerifiedBody))
	return SignalHome
}

// Login authenticates; an unverified account re-enters the verification flow
// instead of reaching Verified.
func (l *Lifecycle) Login(ctx context.Context, email, password string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trLogin, LoginStarted{})

	user, err := l.backend.Login(ctx, email, password)
	if err != nil {
		if l.resolve(trLogin, token, LoginFailed{}) {
			log.Errorf("Login failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgLoginFailed, MsgLoginRetry))
		}
		return SignalNone
	}
	if !l.resolve(trLogin, token, LoginSucceeded{User: user}) {
		return SignalNone
	}
	if !user.IsVerified {
		l.notifier.Notify(notify.InfoNotice(MsgNotVerified, MsgCodeSentBody))
		return SignalVerify
	}
	return SignalHome
}

// RequestPasswordReset stores the transient forgot-user on success.
func (l *Lifecycle) RequestPasswordReset(ctx context.Context, email string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trForgot, nil)

	fu, err := l.backend.RequestPasswordReset(ctx, email)
	if err != nil {
		if l.resolve(trForgot, token, ResetRequestFailed{}) {
			log.Errorf("Password reset request failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgResetFailed, MsgResetRetry))
		}
		return SignalNone
	}
	if !l.resolve(trForgot, token, ResetRequested{Forgot: fu}) {
		return SignalNone
	}
	l.notifier.Notify(notify.SuccessNotice(MsgResetSentTitle, MsgResetSentBody))
	return SignalResetCode
}

func (l *Lifecycle) ValidateForgotCode(ctx context.Context, userId, code string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trForgotValidate, nil)

	if err := l.backend.ValidateForgotCode(ctx, userId, code); err != nil {
		if l.resolve(trForgotValidate, token, ForgotCodeRejected{}) {
			log.Errorf("Forgot-code validation failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgCodeRejected, MsgCodeRetry))
		}
		return SignalNone
	}
	if !l.resolve(trForgotValidate, token, ForgotCodeAccepted{}) {
		return SignalNone
	}
	return SignalNewPassword
}

// ChangePassword completes the reset branch; the forgot-user is discarded and
// the session terminates in Verified with the replaced user.
func (l *Lifecycle) ChangePassword(ctx context.Context, userId, password string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trChangePassword, nil)

	user, err := l.backend.ChangePassword(ctx, userId, password)
	if err != nil {
		if l.resolve(trChangePassword, token, PasswordUpdateFailed{}) {
			log.Errorf("Password change failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgPasswordFailed, MsgTryAgain))
		}
		return SignalNone
	}
	if !l.resolve(trChangePassword, token, PasswordUpdated{User: user}) {
		return SignalNone
	}
	l.notifier.Notify(notify.SuccessNotice(MsgPasswordChanged, MsgVerifiedBody))
	return SignalHome
}

// SignInWithProvider runs the external identity flow. Any provider or network
// failure resets the session to Anonymous and surfaces an informational
// notice; this path is deliberately soft and never fatal.
func (l *Lifecycle) SignInWithProvider(ctx context.Context, ts TokenSource) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trProvider, nil)

	idToken, err := ts.Token(ctx)
	if err != nil {
		if l.resolve(trProvider, token, ProviderFailed{}) {
			log.Warnf("Provider token fetch failed: %v", err)
			l.notifier.Notify(notify.InfoNotice(MsgProviderFailed, MsgProviderRetry))
		}
		return SignalWelcome
	}

	user, err := l.backend.SignInWithProvider(ctx, idToken)
	if err != nil {
		if l.resolve(trProvider, token, ProviderFailed{}) {
			log.Warnf("Provider sign-in failed: %v", err)
			l.notifier.Notify(notify.InfoNotice(MsgProviderFailed, MsgProviderRetry))
		}
		return SignalWelcome
	}
	if !l.resolve(trProvider, token, ProviderSignedIn{User: user}) {
		return SignalNone
	}
	return SignalHome
}

// UpdateProfile replaces the stored user on success; the state is unchanged.
func (l *Lifecycle) UpdateProfile(ctx context.Context, args api.UpdateUserArgs) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trProfile, nil)

	user, err := l.backend.UpdateUser(ctx, args)
	if err != nil {
		if l.resolve(trProfile, token, ProfileUpdateFailed{}) {
			log.Errorf("Profile update failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgProfileFailed, MsgTryAgain))
		}
		return SignalNone
	}
	if !l.resolve(trProfile, token, ProfileUpdated{User: user}) {
		return SignalNone
	}
	l.notifier.Notify(notify.SuccessNotice(MsgProfileUpdated, ""))
	return SignalNone
}

// DeleteAccount removes the remote account and resets the session.
func (l *Lifecycle) DeleteAccount(ctx context.Context, userId string) Signal {
	if !l.gate.CanProceed() {
		return SignalNone
	}
	token := l.begin(trDelete, nil)

	if err := l.backend.DeleteUser(ctx, userId); err != nil {
		if l.resolve(trDelete, token, ProfileUpdateFailed{}) {
			log.Errorf("Account deletion failed: %v", err)
			l.notifier.Notify(notify.ErrorNotice(MsgDeleteFailed, MsgTryAgain))
		}
		return SignalNone
	}
	if !l.resolve(trDelete, token, AccountDeleted{}) {
		return SignalNone
	}
	l.clearSnapshot()
	l.notifier.Notify(notify.InfoNotice(MsgAccountDeleted, ""))
	return SignalWelcome
}

// Logout is local only: no gate, no remote call.
func (l *Lifecycle) Logout() Signal {
	l.mu.Lock()
	l.snap = Reduce(l.snap, LoggedOut{})
	l.mu.Unlock()
	l.clearSnapshot()
	return SignalWelcome
}

// MarkOnboarded records that the intro flow finished on this device.
func (l *Lifecycle) MarkOnboarded(ctx context.Context) {
	if l.local == nil {
		return
	}
	if err := l.local.Set(ctx, persist.KeyOnboarded, "true"); err != nil {
		log.Errorf("Failed to persist the onboarding flag: %v", err)
	}
}

// Onboarded reports whether the intro flow already ran on this device.
func (l *Lifecycle) Onboarded(ctx context.Context) bool {
	if l.local == nil {
		return false
	}
	v, err := l.local.Get(ctx, persist.KeyOnboarded)
	return err == nil && v == "true"
}

// Load restores a persisted session snapshot, if one exists.
func (l *Lifecycle) Load(ctx context.Context) error {
	if l.local == nil {
		return nil
	}
	raw, err := l.local.Get(ctx, persist.KeySession)
	if err == persist.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return err
	}
	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()
	return nil
}

func (l *Lifecycle) saveSnapshot(snap Snapshot) {
	if l.local == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("Failed to marshal session snapshot: %v", err)
		return
	}
	if err := l.local.Set(context.Background(), persist.KeySession, string(raw)); err != nil {
		log.Errorf("Failed to persist session snapshot: %v", err)
	}
}

func (l *Lifecycle) clearSnapshot() {
	if l.local == nil {
		return
	}
	if err := l.local.Delete(context.Background(), persist.KeySession); err != nil {
		log.Errorf("Failed to clear persisted session: %v", err)
	}
}
