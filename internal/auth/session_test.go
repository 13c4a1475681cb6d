package auth

import (
	"context"
	"errors"
	"testing"

	"pmdeck/internal/model"
	"pmdeck/internal/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(model.SeedUsers(), store.SessionStore{Dir: t.TempDir()})
}

func TestLoginSuccess(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	u, err := s.Login(ctx, "alice.martin@company.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != 1 || u.FirstName != "Alice" {
		t.Fatalf("logged in as %+v", u)
	}
	if got := s.Token(); got != "mock-token-1" {
		t.Fatalf("token = %q", got)
	}
	if cur, ok := s.Current(); !ok || cur.ID != 1 {
		t.Fatalf("current = %+v, %v", cur, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "alice.martin@company.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := s.Login(ctx, "nobody@company.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("failed login must not establish a session")
	}
	if s.Token() != "" {
		t.Fatal("token should be empty when logged out")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewSession(model.SeedUsers(), store.SessionStore{Dir: dir})
	if _, err := first.Login(ctx, "bob.johnson@company.com", "password123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh session over the same dir picks the login back up.
	second := NewSession(model.SeedUsers(), store.SessionStore{Dir: dir})
	if err := second.Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	cur, ok := second.Current()
	if !ok || cur.Email != "bob.johnson@company.com" {
		t.Fatalf("restored session: %+v, %v", cur, ok)
	}

	if err := second.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	third := NewSession(model.SeedUsers(), store.SessionStore{Dir: dir})
	if err := third.Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap after logout: %v", err)
	}
	if _, ok := third.Current(); ok {
		t.Fatal("logout must clear the persisted session")
	}
}

func TestRegister(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	before := len(s.Users())

	u, err := s.Register(ctx, "Ada", "Lovelace", "ada@company.com", "secret1", "Developer")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID != before+1 {
		t.Fatalf("id = %d, want %d", u.ID, before+1)
	}
	if u.Position != "Junior" || !u.IsActive {
		t.Fatalf("defaults: %+v", u)
	}
	if cur, ok := s.Current(); !ok || cur.ID != u.ID {
		t.Fatal("register should log the new user in")
	}
	if len(s.Users()) != before+1 {
		t.Fatalf("roster size = %d", len(s.Users()))
	}

	if _, err := s.Register(ctx, "Dup", "User", "ada@company.com", "x", "Developer"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: %v", err)
	}
}

func TestUserLookup(t *testing.T) {
	s := newTestSession(t)
	if u, ok := s.User(3); !ok || u.FirstName != "Carol" {
		t.Fatalf("User(3) = %+v, %v", u, ok)
	}
	if _, ok := s.User(999); ok {
		t.Fatal("unknown id should miss")
	}
}
