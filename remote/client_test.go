package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roadwatch/api"
)

func TestPostCapturesFailureBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Register(context.Background(), api.CreateUser{
		Username: "ada", Email: "ada@example.com", Password: "pw",
	}, "")
	if err == nil {
		t.Fatalf("expected error on 409")
	}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "email already registered") {
		t.Errorf("error should carry status and body text, got: %v", err)
	}
}

func TestPostDecodesEntity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != api.EndPointLogin {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u-1","username":"ada","email":"ada@example.com","is_verified":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	user, err := c.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Id != "u-1" || !user.IsVerified {
		t.Errorf("unexpected user: %+v", user)
	}
}
