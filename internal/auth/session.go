// Package auth holds the explicit session object. The session is constructed
// once at startup and threaded through the CLI and TUI; there is no
// module-global current user.
//
// Lifecycle: Bootstrap (on load) -> Login (active) -> Logout (torn down).
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pmdeck/internal/model"
	"pmdeck/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// Session owns the mock user roster and the current-user state. Only the
// token and user snapshot persist (via SessionStore); the roster itself
// resets to the seed on every start, plus any users registered this run.
type Session struct {
	users   []model.User
	current *model.User
	persist store.SessionStore
}

func NewSession(users []model.User, persist store.SessionStore) *Session {
	return &Session{users: users, persist: persist}
}

// Bootstrap restores a persisted session, if one exists. Missing or invalid
// persisted state is not an error; it just means logged out.
func (s *Session) Bootstrap(ctx context.Context) error {
	token, user, ok, err := s.persist.Load(ctx)
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(token) == "" {
		return nil
	}
	s.current = &user
	return nil
}

// Login checks the credentials against the roster and persists the session.
func (s *Session) Login(ctx context.Context, email, password string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			s.current = &u
			return u, s.persist.Save(ctx, s.Token(), u)
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// Register creates a new roster user and logs in as them. Duplicate email is
// rejected.
func (s *Session) Register(ctx context.Context, firstName, lastName, email, password, role string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, ErrEmailTaken
		}
	}
	u := model.User{
		ID:        len(s.users) + 1,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      role,
		Position:  "Junior",
		JoinDate:  time.Now().Format("2006-01-02"),
		IsActive:  true,
	}
	s.users = append(s.users, u)
	s.current = &u
	return u, s.persist.Save(ctx, s.Token(), u)
}

// Logout tears the session down and clears the persisted fields.
func (s *Session) Logout(ctx context.Context) error {
	s.current = nil
	return s.persist.Clear(ctx)
}

// Current returns the active user, if logged in.
func (s *Session) Current() (model.User, bool) {
	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// Token is the mock auth token for the active user, empty when logged out.
func (s *Session) Token() string {
	if s.current == nil {
		return ""
	}
	return fmt.Sprintf("mock-token-%d", s.current.ID)
}

// Users returns the roster (seed users plus any registered this run).
func (s *Session) Users() []model.User {
	return s.users
}

// User looks a roster member up by id.
func (s *Session) User(id int) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}
