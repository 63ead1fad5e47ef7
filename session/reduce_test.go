package session

import (
	"testing"

	"roadwatch/api"
)

func TestReduceLoginRoutesUnverifiedToCodeSent(t *testing.T) {
	testCases := []struct {
		name        string
		user        *api.User
		expectState State
	}{
		{
			name:        "unverified account re-enters verification",
			user:        &api.User{Id: "u-1", IsVerified: false},
			expectState: CodeSent,
		}, {
			name:        "verified account reaches terminal state",
			user:        &api.User{Id: "u-1", IsVerified: true},
			expectState: Verified,
		},
	}

	for _, testCase := range testCases {
		s := Reduce(NewSnapshot(), LoginStarted{})
		s = Reduce(s, LoginSucceeded{User: testCase.user})
		if s.State != testCase.expectState {
			t.Errorf("%s: expected state %s, got %s", testCase.name, testCase.expectState, s.State)
		}
		if s.User == nil || s.User.Id != "u-1" {
			t.Errorf("%s: expected stored user replaced, got %+v", testCase.name, s.User)
		}
	}
}

func TestReduceRegistrationFlow(t *testing.T) {
	cu := api.CreateUser{Username: "ada", Email: "ada@example.com", Password: "pw"}

	s := Reduce(NewSnapshot(), RegistrationStarted{Create: cu})
	if s.State != RegistrationPending || s.Create == nil || s.Create.Email != cu.Email {
		t.Fatalf("after start: unexpected snapshot %+v", s)
	}

	failed := Reduce(s, RegistrationFailed{})
	if failed.State != RegistrationPending || failed.Create == nil {
		t.Errorf("failure must leave the pending registration in place, got %+v", failed)
	}

	accepted := Reduce(s, RegistrationAccepted{User: &api.User{Id: "u-9"}})
	if accepted.State != CodeSent || accepted.User == nil || accepted.User.Id != "u-9" {
		t.Errorf("after acceptance: unexpected snapshot %+v", accepted)
	}
	if accepted.Create != nil {
		t.Errorf("acceptance must discard the local CreateUser")
	}
}

func TestReduceForgotPasswordBranch(t *testing.T) {
	fu := &api.ForgotUser{UserId: "u-1", Email: "ada@example.com"}

	s := Reduce(NewSnapshot(), ResetRequested{Forgot: fu})
	if s.State != ForgotCodeRequested || s.Forgot == nil {
		t.Fatalf("after reset request: unexpected snapshot %+v", s)
	}

	s = Reduce(s, ForgotCodeAccepted{})
	if s.State != ForgotCodeValidated {
		t.Fatalf("after code accepted: expected %s, got %s", ForgotCodeValidated, s.State)
	}

	s = Reduce(s, PasswordUpdated{User: &api.User{Id: "u-1", IsVerified: true}})
	if s.State != Verified {
		t.Errorf("after password change: expected %s, got %s", Verified, s.State)
	}
	if s.Forgot != nil {
		t.Errorf("password change must discard the ForgotUser")
	}
}

func TestReduceProviderFailureResets(t *testing.T) {
	s := Snapshot{State: LoginPending, User: &api.User{Id: "u-1"}}
	s = Reduce(s, ProviderFailed{})
	if s.State != Anonymous || s.User != nil || s.Create != nil || s.Forgot != nil {
		t.Errorf("provider failure must reset the whole session, got %+v", s)
	}
}

func TestReduceLogoutAndDeleteClearSession(t *testing.T) {
	populated := Snapshot{
		State:  Verified,
		User:   &api.User{Id: "u-1"},
		Forgot: &api.ForgotUser{UserId: "u-1"},
	}

	for _, ev := range []Event{LoggedOut{}, AccountDeleted{}} {
		s := Reduce(populated, ev)
		if s.State != Anonymous || s.User != nil || s.Create != nil || s.Forgot != nil {
			t.Errorf("%T: expected clean anonymous session, got %+v", ev, s)
		}
	}
}

func TestReduceFailureEventsLeaveStateUntouched(t *testing.T) {
	testCases := []struct {
		name string
		snap Snapshot
		ev   Event
	}{
		{name: "code rejected", snap: Snapshot{State: CodeSent, User: &api.User{Id: "u-1"}}, ev: CodeRejected{}},
		{name: "reset request failed", snap: Snapshot{State: Anonymous}, ev: ResetRequestFailed{}},
		{name: "forgot code rejected", snap: Snapshot{State: ForgotCodeRequested}, ev: ForgotCodeRejected{}},
		{name: "password update failed", snap: Snapshot{State: ForgotCodeValidated}, ev: PasswordUpdateFailed{}},
		{name: "profile update failed", snap: Snapshot{State: Verified, User: &api.User{Id: "u-1"}}, ev: ProfileUpdateFailed{}},
	}

	for _, testCase := range testCases {
		got := Reduce(testCase.snap, testCase.ev)
		if got.State != testCase.snap.State {
			t.Errorf("%s: state changed from %s to %s", testCase.name, testCase.snap.State, got.State)
		}
	}
}
